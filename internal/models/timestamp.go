package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Timestamp is a creation instant that travels through MongoDB as an
// RFC 3339 UTC string. Storing text keeps documents readable and makes a
// lexicographic sort on the field equal to a chronological sort. Reads also
// accept native BSON datetimes so documents written by other tools decode.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC instant truncated to whole seconds, matching
// the precision of the stored form.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Second)}
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.UTC().Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: bt, Data: data}
	if s, ok := v.StringValueOK(); ok {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		t.Time = parsed.UTC()
		return nil
	}
	if dt, ok := v.TimeOK(); ok {
		t.Time = dt.UTC()
		return nil
	}
	return fmt.Errorf("timestamp: unsupported bson type %s", bt)
}
