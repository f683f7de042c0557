package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("07:30")
	require.NoError(t, err)
	assert.Equal(t, "07:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("7:30am")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+45, minutes)
}

func TestTimeString_Duration(t *testing.T) {
	ts := TimeString("06:15")
	d, err := ts.Duration()
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour+15*time.Minute, d)
}

func TestTimeString_AddMinutes_WrapsMidnight(t *testing.T) {
	ts := TimeString("23:30")
	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "00:15", got.String())
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
