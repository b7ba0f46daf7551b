package model

import (
	"golang.org/x/net/context"
)

type Entity interface {
	ValueObject
	GetID() *int
	IsNew() bool
}

type ValueObject interface {
	IsValid() bool
	AddError(err error)
	GetErrors() []error
}

type EventSourcedEntity interface {
	Entity
	NewChange(event *Event)
	GetNewChanges() []*Event
}

type EventDispatcher interface {
	AddSubscriber(handler EventHandler)
	GetSubscribers() []EventHandler
	Dispatch(ctx context.Context, event Event) []error
}

type EventHandler func(ctx context.Context, event Event) error

type Reducer func(initialState Entity, event *Event, next Reducer) Entity

type Log interface {
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
}
