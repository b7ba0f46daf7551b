package model

import (
	"encoding/json"

	"golang.org/x/net/context"
)

//DomainService hydrates entities from json payloads and emits events for the changes
type DomainService struct {
	dispatcher EventDispatcher
	logger     Log
}

func NewDomainService(dispatcher EventDispatcher, logger Log) *DomainService {
	return &DomainService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

//Create hydrates a new entity with the payload and emits a create event
func (s *DomainService) Create(ctx context.Context, payload json.RawMessage, entity Entity) (Entity, error) {
	err := json.Unmarshal(payload, entity)
	if err != nil {
		return nil, NewDomainError("unexpected error creating entity", GetType(entity), nil, err)
	}
	if ok := entity.IsValid(); !ok {
		errors := entity.GetErrors()
		if len(errors) != 0 {
			return nil, NewDomainError(errors[0].Error(), GetType(entity), entity.GetID(), errors[0])
		}
	}

	event := NewEntityEvent(CREATE_EVENT, entity, payload)
	if root, ok := entity.(EventSourcedEntity); ok {
		root.NewChange(event)
	}
	s.dispatchEvent(ctx, event, entity)

	return entity, nil
}

//Update applies the payload to an existing entity. The identifier in the payload must match the entity
func (s *DomainService) Update(ctx context.Context, payload json.RawMessage, entity Entity) (Entity, error) {
	payloadID, err := GetIDFromPayload(payload)
	if err != nil {
		return nil, NewDomainError("unexpected error unmarshalling payload to get the identifier", GetType(entity), entity.GetID(), err)
	}

	if entity.IsNew() {
		return nil, NewDomainError("cannot update an entity that has no identifier", GetType(entity), nil, nil)
	}

	if payloadID != nil && *payloadID != *entity.GetID() {
		return nil, NewDomainError("the identifier in the payload does not match the entity", GetType(entity), entity.GetID(), nil)
	}

	err = json.Unmarshal(payload, entity)
	if err != nil {
		return nil, NewDomainError("unexpected error updating entity", GetType(entity), entity.GetID(), err)
	}
	if ok := entity.IsValid(); !ok {
		errors := entity.GetErrors()
		if len(errors) != 0 {
			return nil, NewDomainError(errors[0].Error(), GetType(entity), entity.GetID(), errors[0])
		}
	}

	event := NewEntityEvent(UPDATE_EVENT, entity, payload)
	if root, ok := entity.(EventSourcedEntity); ok {
		root.NewChange(event)
	}
	s.dispatchEvent(ctx, event, entity)

	return entity, nil
}

func (s *DomainService) dispatchEvent(ctx context.Context, event *Event, entity Entity) {
	if s.dispatcher == nil {
		return
	}
	errors := s.dispatcher.Dispatch(ctx, *event)
	if s.logger != nil {
		for _, err := range errors {
			s.logger.Errorf("error dispatching '%s' event for entity '%s', got '%s'", event.Type, GetType(entity), err)
		}
	}
}
