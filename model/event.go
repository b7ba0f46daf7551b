package model

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/inflection"
	"github.com/segmentio/ksuid"

	"github.com/mosaicsoft/entitykit/utils"
)

const CREATE_EVENT = "create"
const UPDATE_EVENT = "update"

type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Meta    EventMeta       `json:"meta"`
	Version int             `json:"version"`
	errors  []error
}

type EventMeta struct {
	EntityID   *int   `json:"entity_id,omitempty"`
	EntityType string `json:"entity_type"`
	SequenceNo int64  `json:"sequence_no"`
	Group      string `json:"group"`
	Created    string `json:"created"`
}

//NewEntityEvent creates an event for a change to an entity. The meta group is the pluralized entity type
func NewEntityEvent(eventType string, entity Entity, tpayload interface{}) *Event {
	var ok bool
	var payload json.RawMessage
	if payload, ok = tpayload.(json.RawMessage); !ok {
		payload, _ = json.Marshal(tpayload)
	}

	entityType := GetType(entity)
	return &Event{
		ID:      ksuid.New().String(),
		Type:    eventType,
		Payload: payload,
		Version: 1,
		Meta: EventMeta{
			EntityID:   entity.GetID(),
			EntityType: entityType,
			Group:      inflection.Plural(utils.SnakeCase(entityType)),
			Created:    time.Now().Format(time.RFC3339Nano),
		},
	}
}

func (e *Event) IsValid() bool {
	if e.ID == "" {
		e.AddError(NewDomainError("all events must have an id", "Event", nil, nil))
		return false
	}

	if e.Type == "" {
		e.AddError(NewDomainError("all events must have a type", "Event", e.Meta.EntityID, nil))
		return false
	}

	if e.Meta.EntityType == "" {
		e.AddError(NewDomainError("all events must be associated with an entity type", "Event", e.Meta.EntityID, nil))
		return false
	}

	if e.Version == 0 {
		e.AddError(NewDomainError("all events must have a version no", "Event", e.Meta.EntityID, nil))
		return false
	}

	return true
}

func (e *Event) AddError(err error) {
	e.errors = append(e.errors, err)
}

func (e *Event) GetErrors() []error {
	return e.errors
}
