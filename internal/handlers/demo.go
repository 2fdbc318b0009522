package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexusai/website/internal/apperror"
	"github.com/nexusai/website/internal/demo"
	"github.com/nexusai/website/internal/logger"
	"github.com/nexusai/website/internal/sse"
)

// DemoStream plays the demo transcript as Server-Sent Events.
//
// Events, in order: meta, the messages already visible at mount (the opening
// line, index 0), typing, then one message and one typing event per cue as
// it comes due, and finally done. A client disconnect cancels the request
// context, which stops the scheduler before the next cue. While it waits
// between cues the stream sends keep-alive comments. The server's write
// timeout does not apply to this response.
func (h *Handler) DemoStream(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		h.metrics.DemoRejected.Inc()
		apperror.WriteJSON(w, r, h.log, apperror.ErrTooManyRequests)
		return
	}

	sessionID := uuid.NewString()
	log := h.log.With(logger.Scope("demo"), slog.String("session_id", sessionID))

	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		log.Debug("demo stream write deadline not cleared", logger.Error(err))
	}

	sw := sse.NewWriter(w)
	if err := sw.Start(); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.ErrStreamingUnsupported.WithInternal(err))
		return
	}
	defer sw.Close()

	h.metrics.DemoStreams.Inc()
	defer h.metrics.DemoStreams.Dec()

	log.Debug("demo stream opened")

	stopKeepAlive := h.keepAlive(sw, log)
	defer stopKeepAlive()

	transcript := demo.NewTranscript(h.script)

	if err := sw.WriteEvent("", string(sse.EventMeta), sse.NewMetaEvent(sessionID, h.script.Len())); err != nil {
		log.Debug("demo stream write failed", logger.Error(err))
		return
	}
	for i, m := range transcript.Messages() {
		if err := h.writeMessage(sw, i, m); err != nil {
			log.Debug("demo stream write failed", logger.Error(err))
			return
		}
	}
	if err := sw.WriteEvent("", string(sse.EventTyping), sse.NewTypingEvent(transcript.Typing())); err != nil {
		log.Debug("demo stream write failed", logger.Error(err))
		return
	}

	err := demo.NewScheduler(h.script).Run(r.Context(), func(index int, m demo.Message) error {
		transcript = transcript.Append(m)
		if err := h.writeMessage(sw, index, m); err != nil {
			return err
		}
		return sw.WriteEvent("", string(sse.EventTyping), sse.NewTypingEvent(transcript.Typing()))
	})
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Debug("demo stream closed by client", slog.Int("shown", transcript.Len()))
		return
	case err != nil:
		log.Warn("demo stream aborted", logger.Error(err))
		return
	}

	if err := sw.WriteEvent("", string(sse.EventDone), sse.NewDoneEvent()); err != nil {
		log.Debug("demo stream write failed", logger.Error(err))
		return
	}
	log.Debug("demo stream finished", slog.Int("shown", transcript.Len()))
}

func (h *Handler) writeMessage(sw *sse.Writer, index int, m demo.Message) error {
	err := sw.WriteEvent(strconv.Itoa(index), string(sse.EventMessage), sse.NewMessageEvent(index, string(m.Sender), m.Text))
	if err == nil {
		h.metrics.DemoMessages.Inc()
	}
	return err
}

// keepAlive writes a comment to sw on every tick until the returned function
// is called. The returned function waits for the goroutine to exit.
func (h *Handler) keepAlive(sw *sse.Writer, log *slog.Logger) func() {
	if h.keepAliveEvery <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(h.keepAliveEvery)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := sw.WriteComment("keep-alive"); err != nil {
					log.Debug("demo stream keep-alive failed", logger.Error(err))
					return
				}
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}
