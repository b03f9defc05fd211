package messaging

import (
	"encoding/json"
	"testing"

	"econdash/config"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	env := NewEnvelope("refresh", "etl-worldbank", Refresh{Path: "data/processed/econ_option_a.parquet"})
	if env.ID == "" {
		t.Fatal("envelope has no id")
	}

	data, err := env.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Type != "refresh" || decoded.ClientID != "etl-worldbank" {
		t.Errorf("decoded = %+v", decoded)
	}

	var req Refresh
	if err := json.Unmarshal(decoded.Payload, &req); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if req.Path != "data/processed/econ_option_a.parquet" {
		t.Errorf("path = %s", req.Path)
	}
}

func TestDecodeRejectsMissingType(t *testing.T) {
	if _, err := Decode([]byte(`{"id":"x"}`)); err == nil {
		t.Error("expected error for envelope without type")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("expected error for malformed envelope")
	}
}

func TestClientDisabledBackend(t *testing.T) {
	c := NewClient(&config.MessagingConfig{})
	if err := c.Connect(); err != nil {
		t.Fatalf("Connect with disabled backend: %v", err)
	}
	if c.IsConnected() {
		t.Error("disabled backend reports connected")
	}
}
