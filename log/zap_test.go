package logs

import (
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestZap_Level(t *testing.T) {
	zlogger, err := NewZap("debug")
	if err != nil {
		t.Fatalf("unexpected error setting up logger '%s'", err)
	}
	defer zlogger.Sync() // flushes buffer, if any
	if zlogger.Level() != log.DEBUG {
		t.Errorf("expected the level to be %d got %d", log.DEBUG, zlogger.Level())
	}
}

func TestZap_SetLevel(t *testing.T) {
	zlogger, err := NewZap("info")
	if err != nil {
		t.Fatalf("unexpected error setting up logger '%s'", err)
	}
	defer zlogger.Sync() // flushes buffer, if any
	zlogger.SetLevel(log.ERROR)
	if zlogger.Level() != log.ERROR {
		t.Errorf("expected the level to be %d got %d", log.ERROR, zlogger.Level())
	}
}

func TestZap_ExtractedFieldsAreLogged(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	lvl := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zlogger := &Zap{
		SugaredLogger: zap.New(core).Sugar(),
		level:         &lvl,
	}

	zlogger.Errorf("error updating entity '%s'", zap.String("entity_type", "BlogPost"), "some error")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected %d log entry, got %d", 1, len(entries))
	}

	if entries[0].Message != "error updating entity 'some error'" {
		t.Errorf("expected the message to be '%s', got '%s'", "error updating entity 'some error'", entries[0].Message)
	}

	fields := entries[0].ContextMap()
	if fields["entity_type"] != "BlogPost" {
		t.Errorf("expected the entity_type field to be '%s', got '%v'", "BlogPost", fields["entity_type"])
	}
}

func TestZap_InvalidLevel(t *testing.T) {
	_, err := NewZap("noisy")
	if err == nil {
		t.Errorf("expected an error setting up a logger with an invalid level")
	}
}
