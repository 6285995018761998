package testutil

import (
	"context"
	"sort"

	"github.com/minerush/backend/internal/domain/statistic"
)

// MockRandomizer returns scripted values. With no script, Intn always
// returns 0 and Range returns its lower bound.
type MockRandomizer struct {
	IntnFunc  func(n int) int
	RangeFunc func(a, b int) int
}

func (m *MockRandomizer) Intn(n int) int {
	if m.IntnFunc != nil {
		return m.IntnFunc(n)
	}

	return 0
}

func (m *MockRandomizer) Range(a, b int) int {
	if m.RangeFunc != nil {
		return m.RangeFunc(a, b)
	}

	return a
}

// MockPaymentVerifier accepts every payment unless VerifyFunc says
// otherwise.
type MockPaymentVerifier struct {
	VerifyFunc func(ctx context.Context, txHash string, amount float64, wallet string) error
}

func (m *MockPaymentVerifier) Verify(
	ctx context.Context, txHash string, amount float64, wallet string,
) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, txHash, amount, wallet)
	}

	return nil
}

// MockLeaderboard keeps scores in memory instead of redis.
type MockLeaderboard struct {
	Scores map[string]map[string]int64
}

func NewMockLeaderboard() *MockLeaderboard {
	return &MockLeaderboard{Scores: make(map[string]map[string]int64)}
}

func (m *MockLeaderboard) ChangeRewardLeaderboard(
	ctx context.Context, value int64, eventID, userID string,
) error {
	if m.Scores[eventID] == nil {
		m.Scores[eventID] = make(map[string]int64)
	}

	m.Scores[eventID][userID] += value
	return nil
}

func (m *MockLeaderboard) GetLeaderboard(
	ctx context.Context, eventID string, offset, limit int,
) ([]statistic.Entry, error) {
	entries := []statistic.Entry{}
	for userID, value := range m.Scores[eventID] {
		entries = append(entries, statistic.Entry{UserID: userID, Value: int(value)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })

	if offset >= len(entries) {
		return []statistic.Entry{}, nil
	}

	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}

	return entries[offset:end], nil
}

func (m *MockLeaderboard) RemoveLeaderboard(ctx context.Context, eventID string) error {
	delete(m.Scores, eventID)
	return nil
}

func (m *MockLeaderboard) GetRank(ctx context.Context, eventID, userID string) (uint64, error) {
	entries, err := m.GetLeaderboard(ctx, eventID, 0, len(m.Scores[eventID]))
	if err != nil {
		return 0, err
	}

	for i, entry := range entries {
		if entry.UserID == userID {
			return uint64(i + 1), nil
		}
	}

	return 0, nil
}
