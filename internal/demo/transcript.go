package demo

// typingLimit is the transcript length at which the indicator is never shown.
const typingLimit = 6

// Transcript is the list of bubbles currently on screen. It is a value:
// Append returns a new transcript and never mutates the receiver.
type Transcript struct {
	messages []Message
}

// NewTranscript starts a transcript with the script's opening message.
func NewTranscript(s Script) Transcript {
	return Transcript{messages: []Message{s.Opening}}
}

func (t Transcript) Append(m Message) Transcript {
	next := make([]Message, len(t.messages), len(t.messages)+1)
	copy(next, t.messages)
	return Transcript{messages: append(next, m)}
}

func (t Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the bubbles in display order.
func (t Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Typing reports whether the "agent is typing" indicator is shown: the
// visitor spoke last and the conversation is still short of its end.
func (t Transcript) Typing() bool {
	n := len(t.messages)
	if n == 0 || n >= typingLimit {
		return false
	}
	return t.messages[n-1].Sender == SenderVisitor
}
