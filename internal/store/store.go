package store

import (
	"context"
	"math"
	"strings"
	"time"
)

const (
	// ActionTailored marks a completed tailoring run and feeds the counters.
	ActionTailored = "tailored"
	// ActionApplied marks a submitted application.
	ActionApplied = "applied"

	maxRecentActivity = 10
)

// Activity is one item in a user's recent-activity feed.
type Activity struct {
	Action     string    `json:"action"`
	Company    string    `json:"company"`
	Role       string    `json:"role"`
	MatchScore int       `json:"match_score"`
	Timestamp  time.Time `json:"timestamp"`
}

// UserStats aggregates a user's tailoring history.
type UserStats struct {
	ResumesTailored   int        `json:"resumes_tailored"`
	AverageMatchScore float64    `json:"average_match_score"`
	ApplicationsSent  int        `json:"applications_sent"`
	RecentActivity    []Activity `json:"recent_activity"`
}

// StatsStore keeps per-user tailoring stats. Reads for unknown users return
// zero-valued stats, never an error.
type StatsStore interface {
	RecordActivity(ctx context.Context, userID string, act Activity) error
	Stats(ctx context.Context, userID string) (UserStats, error)
	Activity(ctx context.Context, userID string) ([]Activity, error)
}

// userRecord is the persisted shape; match scores are kept so the average
// stays exact across restarts of a redis-backed store.
type userRecord struct {
	ResumesTailored  int        `json:"resumes_tailored"`
	ApplicationsSent int        `json:"applications_sent"`
	MatchScores      []int      `json:"match_scores"`
	RecentActivity   []Activity `json:"recent_activity"`
}

func (r *userRecord) apply(act Activity) {
	if act.Timestamp.IsZero() {
		act.Timestamp = time.Now()
	}

	r.RecentActivity = append([]Activity{act}, r.RecentActivity...)
	if len(r.RecentActivity) > maxRecentActivity {
		r.RecentActivity = r.RecentActivity[:maxRecentActivity]
	}

	// Clients send descriptive actions ("Resume tailored for <role> at
	// <company>"), so counters key on containment, not the exact constant.
	action := strings.ToLower(act.Action)
	switch {
	case strings.Contains(action, ActionTailored):
		r.ResumesTailored++
		if act.MatchScore > 0 {
			r.MatchScores = append(r.MatchScores, act.MatchScore)
		}
	case strings.Contains(action, ActionApplied):
		r.ApplicationsSent++
	}
}

func (r *userRecord) stats() UserStats {
	out := UserStats{
		ResumesTailored:  r.ResumesTailored,
		ApplicationsSent: r.ApplicationsSent,
		RecentActivity:   append([]Activity(nil), r.RecentActivity...),
	}
	if out.RecentActivity == nil {
		out.RecentActivity = []Activity{}
	}
	if len(r.MatchScores) > 0 {
		sum := 0
		for _, s := range r.MatchScores {
			sum += s
		}
		out.AverageMatchScore = math.Round(float64(sum) / float64(len(r.MatchScores)))
	}
	return out
}
