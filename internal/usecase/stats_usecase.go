package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume-tailor/internal/repository"
	"resume-tailor/internal/store"
)

type StatsUsecase interface {
	Stats(ctx context.Context, userID string) (store.UserStats, error)
	Activity(ctx context.Context, userID string) ([]store.Activity, error)
	Record(ctx context.Context, userID string, act store.Activity) (store.UserStats, error)
	History(ctx context.Context, userID string) ([]repository.HistoryEntry, error)
}

type Stats struct {
	stats   store.StatsStore
	history repository.HistoryRepository
}

func NewStatsUsecase(stats store.StatsStore, history repository.HistoryRepository) *Stats {
	return &Stats{stats: stats, history: history}
}

func (u *Stats) Stats(ctx context.Context, userID string) (store.UserStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return store.UserStats{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}

	stats, err := u.stats.Stats(ctx, userID)
	if err != nil {
		return store.UserStats{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return stats, nil
}

func (u *Stats) Activity(ctx context.Context, userID string) ([]store.Activity, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}

	acts, err := u.stats.Activity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return acts, nil
}

// Record appends an activity (an application sent, a manual tailoring note)
// and returns the updated aggregates.
func (u *Stats) Record(ctx context.Context, userID string, act store.Activity) (store.UserStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return store.UserStats{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if strings.TrimSpace(act.Action) == "" {
		return store.UserStats{}, fmt.Errorf("%w: action required", ErrInvalidInput)
	}

	if err := u.stats.RecordActivity(ctx, userID, act); err != nil {
		return store.UserStats{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return u.Stats(ctx, userID)
}

func (u *Stats) History(ctx context.Context, userID string) ([]repository.HistoryEntry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if u.history == nil {
		return nil, ErrHistoryUnavailable
	}

	entries, err := u.history.ListByUser(ctx, userID, 20)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return entries, nil
}
