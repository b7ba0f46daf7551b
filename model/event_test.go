package model_test

import (
	kit "github.com/mosaicsoft/entitykit/model"
	"testing"
)

type BlogPost struct {
	kit.AggregateRoot
	Title string `json:"title"`
}

func TestNewEntityEvent(t *testing.T) {
	post := &BlogPost{Title: "First Post"}
	id := 1
	post.SetID(&id)

	event := kit.NewEntityEvent("TEST_EVENT", post, &struct {
		Title string `json:"title"`
	}{Title: "First Post"})

	if event.ID == "" {
		t.Errorf("expected the event to have an id")
	}

	if event.Type != "TEST_EVENT" {
		t.Errorf("expected event to be type '%s', got '%s'", "TEST_EVENT", event.Type)
	}

	if event.Meta.EntityID == nil || *event.Meta.EntityID != 1 {
		t.Errorf("expected the entity id to be %d", 1)
	}

	if event.Meta.EntityType != "BlogPost" {
		t.Errorf("expected the entity to have entityType '%s', got '%s'", "BlogPost", event.Meta.EntityType)
	}

	if event.Meta.Group != "blog_posts" {
		t.Errorf("expected the entity group to be '%s', got '%s'", "blog_posts", event.Meta.Group)
	}

	if event.Version != 1 {
		t.Errorf("expected the event version to be %d, got %d", 1, event.Version)
	}
}

func TestNewEntityEvent_NewEntity(t *testing.T) {
	post := &BlogPost{Title: "Draft"}
	event := kit.NewEntityEvent(kit.CREATE_EVENT, post, nil)
	if event.Meta.EntityID != nil {
		t.Errorf("expected the entity id to be nil for a new entity, got %d", *event.Meta.EntityID)
	}
}

func TestEvent_IsValid(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		post := &BlogPost{}
		event := kit.NewEntityEvent("TEST_EVENT", post, nil)
		if !event.IsValid() {
			t.Errorf("expected the event to be valid")
		}
	})

	t.Run("no event id, event invalid", func(t *testing.T) {
		event := kit.Event{
			ID:      "",
			Type:    "Some Type",
			Payload: nil,
			Meta: kit.EventMeta{
				EntityType: "BlogPost",
			},
			Version: 1,
		}
		if event.IsValid() {
			t.Fatalf("expected the event to be invalid")
		}

		if len(event.GetErrors()) == 0 {
			t.Errorf("expected the event to have errors")
		}
	})

	t.Run("no entity type, event invalid", func(t *testing.T) {
		event := kit.Event{
			ID:      "some id",
			Type:    "Some Type",
			Version: 1,
		}
		if event.IsValid() {
			t.Fatalf("expected the event to be invalid")
		}
	})

	t.Run("no version, event invalid", func(t *testing.T) {
		event := kit.Event{
			ID:   "some id",
			Type: "Some Type",
			Meta: kit.EventMeta{
				EntityType: "BlogPost",
			},
		}
		if event.IsValid() {
			t.Fatalf("expected the event to be invalid")
		}
	})
}
