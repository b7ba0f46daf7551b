package model

import (
	"errors"
	"net/http"
)

var EntityNotFound = errors.New("entity not found")

type EntityError struct {
	Message  string
	Code     int
	err      error
	ModuleID string
}

func (e *EntityError) Error() string {
	return e.Message
}

func (e *EntityError) Unwrap() error {
	return e.err
}

type DomainError struct {
	*EntityError
	EntityID   *int
	EntityType string
}

func NewError(message string, err error) *EntityError {
	return &EntityError{
		Message: message,
		err:     err,
	}
}

func NewDomainError(message string, entityType string, entityID *int, err error) *DomainError {
	terror := &DomainError{
		EntityError: NewError(message, err),
		EntityID:    entityID,
		EntityType:  entityType,
	}
	terror.Code = http.StatusBadRequest
	return terror
}
