package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/adityab94/FitForge/config"
	"github.com/sirupsen/logrus"
)

func TestNewJSONLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	logger, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}

	logger.WithField("user_id", "u1").Info("hello")
	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, buf.String())
	}
	if line["msg"] != "hello" || line["user_id"] != "u1" {
		t.Fatalf("unexpected entry %v", line)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "loud"
	if _, err := New(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
