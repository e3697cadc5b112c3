package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type ResumeTailoredEvent struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	MatchScore int    `json:"match_score"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyResumeTailored fans a tailoring completion out to connected activity
// listeners. Safe to call before any hub is set.
func NotifyResumeTailored(userID, company, role string, matchScore int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ResumeTailoredEvent{
		Type:       "resume_tailored",
		UserID:     strings.TrimSpace(userID),
		Company:    company,
		Role:       role,
		MatchScore: matchScore,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
