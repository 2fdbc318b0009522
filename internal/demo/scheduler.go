package demo

import (
	"context"
	"time"
)

// EmitFunc receives each cue as it fires. index is the message's position in
// the transcript, so the first cue has index 1.
type EmitFunc func(index int, m Message) error

// Scheduler plays a script's cues at their offsets from the start of Run.
type Scheduler struct {
	script Script
	now    func() time.Time
}

func NewScheduler(script Script) *Scheduler {
	return &Scheduler{script: script, now: time.Now}
}

// Run fires every cue in order and returns once the last one has been
// emitted. Cancelling ctx drops all outstanding cues at once; emit is never
// called after Run returns. An error from emit stops playback.
func (s *Scheduler) Run(ctx context.Context, emit EmitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := s.now()
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for i, cue := range s.script.Cues {
		wait := cue.Delay - s.now().Sub(start)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		// A cancel racing with the timer wins.
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(i+1, cue.Message); err != nil {
			return err
		}
	}
	return nil
}
