package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlexTimeUnmarshalISOString(t *testing.T) {
	var ft FlexTime
	err := json.Unmarshal([]byte(`"2026-03-01T12:30:00Z"`), &ft)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), ft.Time)
}

func TestFlexTimeUnmarshalEpochMillis(t *testing.T) {
	var ft FlexTime
	err := json.Unmarshal([]byte(`1767225600000`), &ft)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), ft.Time)
}

func TestFlexTimeUnmarshalNativeTimestamp(t *testing.T) {
	var ft FlexTime
	err := json.Unmarshal([]byte(`{"seconds":1767225600,"nanoseconds":500000000}`), &ft)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 500000000, time.UTC), ft.Time)
}

func TestFlexTimeUnmarshalNull(t *testing.T) {
	var ft FlexTime
	err := json.Unmarshal([]byte(`null`), &ft)
	assert.NoError(t, err)
	assert.True(t, ft.IsZero())
}

func TestFlexTimeUnmarshalGarbage(t *testing.T) {
	var ft FlexTime
	err := json.Unmarshal([]byte(`"next tuesday"`), &ft)
	assert.Error(t, err)
}

func TestFlexTimeMarshalRFC3339(t *testing.T) {
	ft := FlexTime{time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(ft)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-03-01T12:30:00Z"`, string(data))
}

func TestFlexTimeMarshalZero(t *testing.T) {
	data, err := json.Marshal(FlexTime{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
