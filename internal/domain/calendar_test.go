package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2021-10-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC), d.Start())
	assert.Equal(t, time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC), d.End())
	assert.Equal(t, "2021-10-01", d.String())
	assert.Equal(t, time.Friday, d.Weekday())

	for _, s := range []string{"", "2021-13-01", "01/10/2021", "2021-10-01T00:00:00Z"} {
		_, err := ParseCalendarDate(s)
		assert.ErrorIs(t, err, ErrInvalidCalendarDate, s)
	}
}

func TestCalendarDate_MarshalJSON(t *testing.T) {
	d, err := ParseCalendarDate(" 2020-04-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2020-04-01", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2020-04-01"`, string(b))
}
