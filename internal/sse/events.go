package sse

// EventType names the events of the live demo stream.
type EventType string

const (
	// EventMeta opens the stream and describes the session.
	EventMeta EventType = "meta"

	// EventMessage carries one chat bubble.
	EventMessage EventType = "message"

	// EventTyping toggles the typing indicator.
	EventTyping EventType = "typing"

	// EventDone is the final event.
	EventDone EventType = "done"
)

// MetaEvent is the first event of a demo stream.
type MetaEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Total     int    `json:"total"`
}

func NewMetaEvent(sessionID string, total int) MetaEvent {
	return MetaEvent{
		Type:      string(EventMeta),
		SessionID: sessionID,
		Total:     total,
	}
}

// MessageEvent is one transcript entry. Index is its position in the transcript.
type MessageEvent struct {
	Type   string `json:"type"`
	Index  int    `json:"index"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

func NewMessageEvent(index int, sender, text string) MessageEvent {
	return MessageEvent{
		Type:   string(EventMessage),
		Index:  index,
		Sender: sender,
		Text:   text,
	}
}

// TypingEvent reports whether the agent is "typing".
type TypingEvent struct {
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

func NewTypingEvent(active bool) TypingEvent {
	return TypingEvent{
		Type:   string(EventTyping),
		Active: active,
	}
}

// DoneEvent ends the stream.
type DoneEvent struct {
	Type string `json:"type"`
}

func NewDoneEvent() DoneEvent {
	return DoneEvent{Type: string(EventDone)}
}
