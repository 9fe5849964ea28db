package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsBothLayouts(t *testing.T) {
	iso, err := ParseDate("2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", iso.String())

	dmy, err := ParseDate("15-02-2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", dmy.String())
	assert.True(t, iso.Equal(dmy.Time))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("yesterday")
	assert.Error(t, err)
	_, err = ParseDate("2024/02/15")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestDateUnmarshalDayMonthYear(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"05-03-2024"`), &d))
	assert.Equal(t, "2024-03-05", d.String())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan("2024-04-06"))
	assert.Equal(t, "2024-04-06", d.String())

	require.NoError(t, d.Scan([]byte("2024-05-07")))
	assert.Equal(t, "2024-05-07", d.String())

	assert.Error(t, d.Scan(42))
}
