package ws

import (
	"encoding/json"
	"time"
)

type PoolRefreshedEvent struct {
	Type       string `json:"type"`
	Candidates int    `json:"candidates"`
	Timestamp  string `json:"timestamp"`
}

// NotifyPoolRefreshed tells connected recruiters the candidate pool changed.
func NotifyPoolRefreshed(h *Hub, candidates int) {
	if h == nil {
		return
	}

	evt := PoolRefreshedEvent{
		Type:       "pool_refreshed",
		Candidates: candidates,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
