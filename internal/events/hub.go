// Package events fans requirement lifecycle events out to SSE
// subscribers, with optional replay backed by a redis list.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

const streamKey = "reqwise:events"

const (
	TypeRequirementCreated = "requirement_created"
	TypeRequirementUpdated = "requirement_updated"
	TypeRequirementDeleted = "requirement_deleted"
)

type Event struct {
	ID   int64       `json:"id"`
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type subscriber struct {
	ch chan Event
}

// Hub broadcasts lifecycle events to subscribers. When a redis client
// is configured, events are also appended to a list so reconnecting
// clients can replay from their Last-Event-ID.
type Hub struct {
	mu          sync.RWMutex
	subscribers []*subscriber
	nextID      int64
	rdb         *redis.Client
}

// NewHub creates a hub; rdb may be nil to disable replay.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{rdb: rdb}
}

func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscriber{ch: make(chan Event, 256)}
	h.subscribers = append(h.subscribers, sub)

	unsub := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.subscribers {
			if s == sub {
				h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
				close(sub.ch)
				break
			}
		}
	}
	return sub.ch, unsub
}

func (h *Hub) Broadcast(eventType string, data interface{}) {
	event := Event{Type: eventType, Data: data}

	if h.rdb != nil {
		ctx := context.Background()
		payload, _ := json.Marshal(event)
		if n, err := h.rdb.RPush(ctx, streamKey, string(payload)).Result(); err == nil {
			event.ID = n - 1
		}
	}

	h.mu.Lock()
	if h.rdb == nil {
		event.ID = h.nextID
		h.nextID++
	}
	subs := append([]*subscriber(nil), h.subscribers...)
	h.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			// drop if full
		}
	}
}

// ReplayFrom returns events at or after fromID. Without redis there is
// no history to replay.
func (h *Hub) ReplayFrom(fromID int64) ([]Event, error) {
	if h.rdb == nil {
		return nil, nil
	}

	ctx := context.Background()
	items, err := h.rdb.LRange(ctx, streamKey, fromID, -1).Result()
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(items))
	for i, item := range items {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		ev.ID = fromID + int64(i)
		events = append(events, ev)
	}
	return events, nil
}

func ParseLastEventID(header string) int64 {
	if header == "" {
		return 0
	}
	id, _ := strconv.ParseInt(header, 10, 64)
	return id
}
