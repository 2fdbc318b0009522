package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCall(t *testing.T) {
	require.NoError(t, BookingCall.Validate())
	assert.Equal(t, 6, BookingCall.Len())
	assert.Equal(t, SenderAgent, BookingCall.Opening.Sender)

	wantDelays := []time.Duration{2000, 4500, 7000, 9000, 11000}
	for i, c := range BookingCall.Cues {
		assert.Equal(t, wantDelays[i]*time.Millisecond, c.Delay)
	}
}

func TestScript_Validate(t *testing.T) {
	msg := Message{SenderAgent, "hi"}
	tests := []struct {
		name    string
		cues    []Cue
		wantErr bool
	}{
		{"empty", nil, false},
		{"increasing", []Cue{{0, msg}, {time.Second, msg}}, false},
		{"negative", []Cue{{-time.Second, msg}}, true},
		{"equal delays", []Cue{{time.Second, msg}, {time.Second, msg}}, true},
		{"decreasing", []Cue{{2 * time.Second, msg}, {time.Second, msg}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Script{Opening: msg, Cues: tt.cues}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScript_VisibleIsPrefix(t *testing.T) {
	all := BookingCall.Visible(time.Hour)
	require.Len(t, all, BookingCall.Len())

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 1},
		{1999 * time.Millisecond, 1},
		{2000 * time.Millisecond, 2},
		{4499 * time.Millisecond, 2},
		{4500 * time.Millisecond, 3},
		{8 * time.Second, 4},
		{9 * time.Second, 5},
		{11 * time.Second, 6},
		{-time.Second, 1},
	}

	for _, tt := range tests {
		got := BookingCall.Visible(tt.elapsed)
		assert.Len(t, got, tt.want, "elapsed %s", tt.elapsed)
		assert.Equal(t, all[:tt.want], got, "elapsed %s", tt.elapsed)
	}
}

func TestScript_VisibleGrowsMonotonically(t *testing.T) {
	prev := BookingCall.Visible(0)
	for ms := 0; ms <= 12000; ms += 250 {
		cur := BookingCall.Visible(time.Duration(ms) * time.Millisecond)
		require.GreaterOrEqual(t, len(cur), len(prev))
		assert.Equal(t, prev, cur[:len(prev)])
		prev = cur
	}
}

func TestScript_Scaled(t *testing.T) {
	fast := BookingCall.Scaled(1000)
	require.Len(t, fast.Cues, len(BookingCall.Cues))
	assert.Equal(t, 2*time.Millisecond, fast.Cues[0].Delay)
	assert.Equal(t, 11*time.Millisecond, fast.Cues[4].Delay)
	assert.Equal(t, BookingCall.Cues[2].Message, fast.Cues[2].Message)

	// The original is untouched.
	assert.Equal(t, 2000*time.Millisecond, BookingCall.Cues[0].Delay)

	assert.Equal(t, BookingCall, BookingCall.Scaled(1))
	assert.Equal(t, BookingCall, BookingCall.Scaled(0))
}
