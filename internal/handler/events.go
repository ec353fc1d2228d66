package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Gabriel-Pasternak/ReqWise/internal/events"
	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// GET /events/stream
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		InternalError(c, "streaming not supported")
		return
	}

	lastEventID := events.ParseLastEventID(c.GetHeader("Last-Event-ID"))

	// Replay history for reconnecting clients
	history, _ := h.hub.ReplayFrom(lastEventID)
	for _, ev := range history {
		writeEvent(c, ev)
	}
	flusher.Flush()

	ch, unsub := h.hub.Subscribe()
	defer unsub()

	for {
		select {
		case ev, open := <-ch:
			if !open {
				return
			}
			writeEvent(c, ev)
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeEvent(c *gin.Context, ev events.Event) {
	data, _ := json.Marshal(ev.Data)
	fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, string(data))
}
