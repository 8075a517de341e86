package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr error
	}{
		{name: "valid morning", input: "08:30", want: "08:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "8:30", wantErr: ErrInvalidTimeFormat},
		{name: "hour out of range", input: "24:00", wantErr: ErrInvalidTimeFormat},
		{name: "minute out of range", input: "10:60", wantErr: ErrInvalidTimeFormat},
		{name: "with seconds", input: "10:00:00", wantErr: ErrInvalidTimeFormat},
		{name: "garbage", input: "noon", wantErr: ErrInvalidTimeFormat},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = TimeString("bogus").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	// An unpadded hour parses under "15:04" but is not canonical HH:MM.
	_, err = TimeString("8:30").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr error
	}{
		{name: "within day", start: "08:00", add: 90, want: "09:30"},
		{name: "to last minute", start: "23:00", add: 59, want: "23:59"},
		{name: "exactly midnight is out of range", start: "23:00", add: 60, wantErr: ErrTimeOutOfRange},
		{name: "past midnight", start: "23:30", add: 45, wantErr: ErrTimeOutOfRange},
		{name: "negative below zero", start: "00:10", add: -20, wantErr: ErrTimeOutOfRange},
		{name: "negative within day", start: "10:00", add: -30, want: "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))

	assert.True(t, TimeString("10:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Malformed values never compare as before/after.
	assert.False(t, TimeString("bogus").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bogus"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	// Postgres TIME columns come back with seconds.
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("07:15:59")))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 10, 9, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:45"), ts)

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("25:00"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)

	_, err = TimeString("eleven").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
