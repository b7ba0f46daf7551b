package model

import (
	"encoding/json"
)

//AggregateRoot is a base struct for entities that track their changes as events
type AggregateRoot struct {
	BasicEntity
	SequenceNo int64 `json:"sequence_no"`
	newEvents  []*Event
}

func (w *AggregateRoot) NewChange(event *Event) {
	w.SequenceNo += 1
	event.Meta.SequenceNo = w.SequenceNo
	w.newEvents = append(w.newEvents, event)
}

func (w *AggregateRoot) GetNewChanges() []*Event {
	return w.newEvents
}

//Persist clears the new events array
func (w *AggregateRoot) Persist() {
	w.newEvents = nil
}

var DefaultReducer = func(initialState Entity, event *Event, next Reducer) Entity {
	err := json.Unmarshal(event.Payload, &initialState)
	if err != nil {
		initialState.AddError(NewDomainError("error unmarshalling event into entity", GetType(initialState), initialState.GetID(), err))
	}
	return initialState
}

var NewAggregateFromEvents = func(initialState Entity, events []*Event) Entity {
	for _, event := range events {
		initialState = DefaultReducer(initialState, event, nil)
	}

	return initialState
}
