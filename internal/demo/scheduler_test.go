package demo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	indexes []int
	msgs    []Message
}

func (r *recorder) emit(index int, m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexes = append(r.indexes, index)
	r.msgs = append(r.msgs, m)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

func TestScheduler_PlaysAllCuesInOrder(t *testing.T) {
	script := BookingCall.Scaled(1000)
	rec := &recorder{}

	start := time.Now()
	err := NewScheduler(script).Run(context.Background(), rec.emit)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), script.Cues[len(script.Cues)-1].Delay)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, rec.indexes)
	for i, c := range script.Cues {
		assert.Equal(t, c.Message, rec.msgs[i])
	}
}

func TestScheduler_CancelStopsOutstandingCues(t *testing.T) {
	script := Script{
		Opening: BookingCall.Opening,
		Cues: []Cue{
			{time.Millisecond, BookingCall.Cues[0].Message},
			{time.Hour, BookingCall.Cues[1].Message},
			{2 * time.Hour, BookingCall.Cues[2].Message},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	done := make(chan error, 1)

	go func() {
		done <- NewScheduler(script).Run(ctx, func(i int, m Message) error {
			_ = rec.emit(i, m)
			if i == 1 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	assert.Equal(t, 1, rec.count())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, rec.count(), "nothing may fire after Run returns")
}

func TestScheduler_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	err := NewScheduler(BookingCall.Scaled(1000)).Run(ctx, rec.emit)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rec.count())
}

func TestScheduler_EmitErrorStopsPlayback(t *testing.T) {
	boom := errors.New("client went away")
	calls := 0

	err := NewScheduler(BookingCall.Scaled(1000)).Run(context.Background(), func(int, Message) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestScheduler_MatchesVisibleTimeline(t *testing.T) {
	script := BookingCall.Scaled(500)
	tr := NewTranscript(script)

	err := NewScheduler(script).Run(context.Background(), func(i int, m Message) error {
		tr = tr.Append(m)
		assert.Equal(t, i+1, tr.Len())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, script.Visible(time.Hour), tr.Messages())
}
