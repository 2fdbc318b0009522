// Package demo drives the scripted chat shown in the hero's live demo console.
package demo

import (
	"fmt"
	"time"
)

// Sender identifies who a chat bubble belongs to.
type Sender string

const (
	SenderAgent   Sender = "agent"
	SenderVisitor Sender = "visitor"
)

// Message is one chat bubble.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Cue schedules a message at a fixed offset from the start of playback.
type Cue struct {
	Delay   time.Duration
	Message Message
}

// Script is an opening message followed by timed cues.
type Script struct {
	Opening Message
	Cues    []Cue
}

// BookingCall is the lead-qualification conversation shown on the home page.
var BookingCall = Script{
	Opening: Message{SenderAgent, "Hi! I saw you clicked on our ad for Social Media Management. Are you looking to scale your local biz?"},
	Cues: []Cue{
		{2000 * time.Millisecond, Message{SenderVisitor, "Yes, but I don't have much time."}},
		{4500 * time.Millisecond, Message{SenderAgent, "Perfect. We handle it 100% for you. Are you available for a 10 min sync tomorrow at 2 PM or 4 PM?"}},
		{7000 * time.Millisecond, Message{SenderVisitor, "4 PM works for me."}},
		{9000 * time.Millisecond, Message{SenderAgent, "Awesome! Generating calendar invite..."}},
		{11000 * time.Millisecond, Message{SenderAgent, "Meeting confirmed! I added it to your calendar and sent a reminder text. Talk soon!"}},
	},
}

// Len is the number of messages in a fully played script.
func (s Script) Len() int {
	return 1 + len(s.Cues)
}

// Validate checks that cue delays are non-negative and strictly increasing.
func (s Script) Validate() error {
	var prev time.Duration = -1
	for i, c := range s.Cues {
		if c.Delay < 0 {
			return fmt.Errorf("cue %d: negative delay %s", i, c.Delay)
		}
		if c.Delay <= prev {
			return fmt.Errorf("cue %d: delay %s does not follow %s", i, c.Delay, prev)
		}
		prev = c.Delay
	}
	return nil
}

// Visible returns the messages shown once elapsed time has passed since
// playback started: the opening plus every cue due by then, in order.
func (s Script) Visible(elapsed time.Duration) []Message {
	out := []Message{s.Opening}
	for _, c := range s.Cues {
		if c.Delay > elapsed {
			break
		}
		out = append(out, c.Message)
	}
	return out
}

// Scaled returns a copy with every delay divided by speed.
func (s Script) Scaled(speed float64) Script {
	if speed <= 0 || speed == 1 {
		return s
	}
	cues := make([]Cue, len(s.Cues))
	for i, c := range s.Cues {
		cues[i] = Cue{
			Delay:   time.Duration(float64(c.Delay) / speed),
			Message: c.Message,
		}
	}
	return Script{Opening: s.Opening, Cues: cues}
}
