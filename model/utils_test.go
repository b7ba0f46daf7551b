package model_test

import (
	kit "github.com/mosaicsoft/entitykit/model"
	"testing"
)

type Entity1 struct {
	kit.AggregateRoot
}

func TestGetEntityType(t *testing.T) {
	t.Run("basic struct", func(t *testing.T) {
		entityType1 := kit.GetType(Entity1{})
		if entityType1 != "Entity1" {
			t.Errorf("expected the type to be %s, got '%s'", "Entity1", entityType1)
		}
	})

	t.Run("struct with pointer", func(t *testing.T) {
		entityType2 := kit.GetType(&Entity1{})
		if entityType2 != "Entity1" {
			t.Errorf("expected the type to be %s, got '%s'", "Entity1", entityType2)
		}
	})
}

func TestGetIDFromPayload(t *testing.T) {
	t.Run("payload with an identifier", func(t *testing.T) {
		id, err := kit.GetIDFromPayload([]byte(`{"id":12,"title":"Test"}`))
		if err != nil {
			t.Fatalf("unexpected error getting the identifier '%s'", err)
		}
		if id == nil || *id != 12 {
			t.Errorf("expected the identifier to be %d", 12)
		}
	})

	t.Run("payload without an identifier", func(t *testing.T) {
		id, err := kit.GetIDFromPayload([]byte(`{"title":"Test"}`))
		if err != nil {
			t.Fatalf("unexpected error getting the identifier '%s'", err)
		}
		if id != nil {
			t.Errorf("expected the identifier to be nil, got %d", *id)
		}
	})

	t.Run("payload with an invalid identifier", func(t *testing.T) {
		_, err := kit.GetIDFromPayload([]byte(`{"id":"twelve"}`))
		if err == nil {
			t.Errorf("expected an error getting a non integer identifier")
		}
	})

	t.Run("payload with a fractional identifier", func(t *testing.T) {
		_, err := kit.GetIDFromPayload([]byte(`{"id":12.5}`))
		if err == nil {
			t.Errorf("expected an error getting a fractional identifier")
		}
	})
}
