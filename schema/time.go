package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime is a timestamp that tolerates the two expiry representations
// written by clients over time: ISO-8601 strings and store-native timestamps
// (epoch milliseconds, or a {seconds, nanoseconds} object). It always
// marshals back out as RFC3339 / bson datetime.
type FlexTime struct {
	time.Time
}

type nativeTimestamp struct {
	Seconds     int64 `json:"seconds" bson:"seconds"`
	Nanoseconds int64 `json:"nanoseconds" bson:"nanoseconds"`
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		t.Time = parsed.UTC()
		return nil
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.Unix(0, millis*int64(time.Millisecond)).UTC()
		return nil
	}

	var native nativeTimestamp
	if err := json.Unmarshal(data, &native); err == nil {
		t.Time = time.Unix(native.Seconds, native.Nanoseconds).UTC()
		return nil
	}

	return fmt.Errorf("unrecognized timestamp: %s", string(data))
}

func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *FlexTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}

	switch bt {
	case bsontype.DateTime:
		t.Time = rv.Time().UTC()
	case bsontype.String:
		parsed, err := time.Parse(time.RFC3339, rv.StringValue())
		if err != nil {
			return err
		}
		t.Time = parsed.UTC()
	case bsontype.Int64:
		t.Time = time.Unix(0, rv.Int64()*int64(time.Millisecond)).UTC()
	case bsontype.EmbeddedDocument:
		var native nativeTimestamp
		if err := bson.Unmarshal(rv.Value, &native); err != nil {
			return err
		}
		t.Time = time.Unix(native.Seconds, native.Nanoseconds).UTC()
	case bsontype.Null:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("unrecognized timestamp bson type: %s", bt)
	}

	return nil
}
