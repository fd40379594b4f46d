package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseDateInvalid(t *testing.T) {
	tests := []string{"", "15-06-2021", "2021/06/15", "2021-13-01", "not-a-date"}
	for _, input := range tests {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(2021, time.June, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2021-06-15"`, string(data))
}

func TestDateMarshalJSONZero(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2021-06-15"`), &d))
	assert.Equal(t, NewDate(2021, time.June, 15), d)

	var zero Date
	require.NoError(t, json.Unmarshal([]byte("null"), &zero))
	assert.True(t, zero.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"June 15th"`), &d))
}

func TestDateAfterIsStrict(t *testing.T) {
	d := NewDate(2021, time.June, 15)

	assert.True(t, NewDate(2021, time.June, 16).After(d))
	assert.False(t, NewDate(2021, time.June, 15).After(d))
	assert.False(t, NewDate(2021, time.June, 14).After(d))
}
