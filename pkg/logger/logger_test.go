package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := context.Background()
	ctx = log.WithSeed(ctx, 42)

	log.Error(ctx, "boom", errors.New("boom"))

	if !bytes.Contains(buf.Bytes(), []byte("\"seed\":42")) {
		t.Fatalf("expected seed to be preserved; entry=%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\"service\":\"test\"")) {
		t.Fatalf("expected service field; entry=%s", buf.String())
	}
}

func TestLoggerWithFieldsChain(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := log.WithFields(context.Background(), map[string]any{"table": "orders"})
	ctx = log.WithField(ctx, "rows", 1000)
	log.Info(ctx, "table written")

	if !bytes.Contains(buf.Bytes(), []byte("\"table\":\"orders\"")) {
		t.Fatalf("expected table field; entry=%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\"rows\":1000")) {
		t.Fatalf("expected rows field; entry=%s", buf.String())
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", lvl)
	}
	if lvl := ParseLevel("invalid"); lvl != zerolog.InfoLevel {
		t.Fatalf("invalid level should fallback to info, got %v", lvl)
	}
	if lvl := ParseLevel("warn"); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", lvl)
	}
}
