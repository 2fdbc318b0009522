// Package ssetest reads event streams back in tests.
package ssetest

import (
	"bufio"
	"io"
	"strings"
)

// Event is one parsed Server-Sent Event.
type Event struct {
	ID    string
	Event string
	Data  string
}

// ParseEvents splits an event-stream body into events. Comments are skipped.
func ParseEvents(body io.Reader) ([]Event, error) {
	var (
		events    []Event
		current   Event
		dataLines []string
	)

	flush := func() {
		if len(dataLines) > 0 || current.Event != "" || current.ID != "" {
			current.Data = strings.Join(dataLines, "\n")
			events = append(events, current)
		}
		current = Event{}
		dataLines = nil
	}

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "id:"):
			current.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		case strings.HasPrefix(line, "event:"):
			current.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	flush()

	return events, scanner.Err()
}
