package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "hours and minutes", input: "08:30", want: "08:30"},
		{name: "with seconds", input: "08:30:15", want: "08:30:15"},
		{name: "zero seconds collapse", input: "20:00:00", want: "20:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "bad minutes", input: "10:60", wantErr: true},
		{name: "single digit", input: "8:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.False(t, got.IsZero())
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	eight, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	noon, err := NewTimeStringFromString("12:00")
	require.NoError(t, err)

	assert.True(t, eight.IsBefore(noon))
	assert.True(t, noon.IsAfter(eight))
	assert.False(t, eight.IsAfter(eight))
	assert.Equal(t, -1, eight.Compare(noon))
	assert.Equal(t, 0, noon.Compare(noon))
	assert.True(t, EndOfDay.IsAfter(noon))
	assert.True(t, EndOfDay.IsEndOfDay())
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, err := NewTimeStringFromString("23:00")
	require.NoError(t, err)

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.True(t, end.IsEndOfDay())

	_, err = start.AddMinutes(61)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestNewTimeString_DropsDate(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC))
	assert.Equal(t, "10:15", ts.String())
	assert.Equal(t, 615, ts.Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, "08:00", ts.String())

	require.NoError(t, ts.Scan("21:30:00.000000"))
	assert.Equal(t, "21:30", ts.String())

	require.NoError(t, ts.Scan("24:00:00"))
	assert.True(t, ts.IsEndOfDay())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	ts, err := NewTimeStringFromString("07:05")
	require.NoError(t, err)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)

	v, err = TimeString{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Start TimeString `json:"start"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"start":"09:45"}`), &payload))
	assert.Equal(t, "09:45", payload.Start.String())

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"09:45"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"9"}`), &payload))
}
