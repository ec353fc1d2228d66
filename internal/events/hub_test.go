package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	h := NewHub(nil)

	ch, unsub := h.Subscribe()
	defer unsub()

	h.Broadcast(TypeRequirementCreated, map[string]string{"id": "REQ-001"})

	select {
	case ev := <-ch:
		assert.Equal(t, TypeRequirementCreated, ev.Type)
		assert.EqualValues(t, 0, ev.ID)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestHub_IDsIncrement(t *testing.T) {
	h := NewHub(nil)

	ch, unsub := h.Subscribe()
	defer unsub()

	h.Broadcast(TypeRequirementCreated, nil)
	h.Broadcast(TypeRequirementUpdated, nil)

	first := <-ch
	second := <-ch
	assert.Equal(t, first.ID+1, second.ID)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(nil)

	ch, unsub := h.Subscribe()
	unsub()

	_, open := <-ch
	assert.False(t, open)

	// broadcasting after unsubscribe must not panic
	h.Broadcast(TypeRequirementDeleted, nil)
}

func TestHub_ReplayWithoutRedis(t *testing.T) {
	h := NewHub(nil)

	events, err := h.ReplayFrom(0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseLastEventID(t *testing.T) {
	assert.EqualValues(t, 0, ParseLastEventID(""))
	assert.EqualValues(t, 42, ParseLastEventID("42"))
	assert.EqualValues(t, 0, ParseLastEventID("garbage"))
}
