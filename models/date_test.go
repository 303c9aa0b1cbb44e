package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.September, 2)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-09-02"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Time.Equal(d.Time))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"02.09.2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`""`), &d))
}

func TestDateUnmarshalNullIsNoop(t *testing.T) {
	d := NewDate(2024, time.September, 2)
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, "2024-09-02", d.String())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-09-02"))
	assert.Equal(t, "2024-09-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-09-03")))
	assert.Equal(t, "2024-09-03", d.String())

	now := time.Date(2024, time.September, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.Scan(now))
	assert.Equal(t, "2024-09-04", d.String())

	assert.Error(t, d.Scan(12345))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.September, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-09-02", v)
}
