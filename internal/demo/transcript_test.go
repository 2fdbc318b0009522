package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_AppendDoesNotMutate(t *testing.T) {
	start := NewTranscript(BookingCall)
	next := start.Append(BookingCall.Cues[0].Message)

	assert.Equal(t, 1, start.Len())
	assert.Equal(t, 2, next.Len())
	assert.Equal(t, BookingCall.Opening, next.Messages()[0])
	assert.Equal(t, BookingCall.Cues[0].Message, next.Messages()[1])
}

func TestTranscript_MessagesIsCopy(t *testing.T) {
	tr := NewTranscript(BookingCall)
	msgs := tr.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, BookingCall.Opening.Text, tr.Messages()[0].Text)
}

func TestTranscript_Typing(t *testing.T) {
	tr := NewTranscript(BookingCall)
	want := []bool{false, true, false, true, false, false}

	assert.Equal(t, want[0], tr.Typing(), "after opening")
	for i, c := range BookingCall.Cues {
		tr = tr.Append(c.Message)
		assert.Equal(t, want[i+1], tr.Typing(), "after %d messages", tr.Len())
	}
}

func TestTranscript_TypingStopsAtLimit(t *testing.T) {
	tr := Transcript{}
	assert.False(t, tr.Typing())

	for i := 0; i < typingLimit; i++ {
		tr = tr.Append(Message{SenderVisitor, "hello?"})
	}
	assert.False(t, tr.Typing(), "never shown once %d messages are on screen", typingLimit)
}
