package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type tsDoc struct {
	Timestamp Timestamp `bson:"timestamp"`
}

func TestTimestampRoundTrip(t *testing.T) {
	in := tsDoc{Timestamp: Now()}

	raw, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// stored form must be a plain string
	var stored struct {
		Timestamp string `bson:"timestamp"`
	}
	if err := bson.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("unmarshal stored form: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, stored.Timestamp); err != nil {
		t.Fatalf("stored timestamp %q is not RFC 3339: %v", stored.Timestamp, err)
	}

	var out tsDoc
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Timestamp.Equal(in.Timestamp.Time) {
		t.Fatalf("round trip changed instant: in=%v out=%v", in.Timestamp, out.Timestamp)
	}
}

func TestTimestampDecodesNativeDatetime(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{"timestamp": want})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out tsDoc
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Timestamp.Equal(want) {
		t.Fatalf("datetime decode: want %v, got %v", want, out.Timestamp)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}
