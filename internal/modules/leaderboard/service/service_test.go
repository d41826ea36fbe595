package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaderboardRepo struct {
	entries []model.LeaderboardEntry
	err     error
	calls   int
}

func (f *fakeLeaderboardRepo) GetTopEntries(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeLeaderboardRepo) GetEntryByUserID(ctx context.Context, userID uuid.UUID) (*model.LeaderboardEntry, error) {
	for i := range f.entries {
		if f.entries[i].UserID == userID {
			return &f.entries[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeLeaderboardRepo) DeleteEntry(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func seedEntries(n int) []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.LeaderboardEntry{
			UserID:     uuid.New(),
			Name:       fmt.Sprintf("user-%d", i),
			Role:       "member",
			Points:     (n - i) * 100,
			LastActive: time.Now(),
		})
	}
	return out
}

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGetLeaderboardRanksAndLevels(t *testing.T) {
	repo := &fakeLeaderboardRepo{entries: seedEntries(5)}
	svc := NewLeaderboardService(repo, nil)

	got, err := svc.GetLeaderboard(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, 500, got[0].Points)
	assert.Equal(t, "Builder", got[0].Level.Name)
	assert.Equal(t, 3, got[2].Position)
}

func TestGetLeaderboardCacheHit(t *testing.T) {
	client := newTestClient(t)
	repo := &fakeLeaderboardRepo{entries: seedEntries(5)}
	svc := NewLeaderboardService(repo, client)
	ctx := context.Background()

	first, err := svc.GetLeaderboard(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	// second read is served from cache, no repo hit
	second, err := svc.GetLeaderboard(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)

	// a different limit is a different cache key
	_, err = svc.GetLeaderboard(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestInvalidateCacheForcesRefetch(t *testing.T) {
	client := newTestClient(t)
	repo := &fakeLeaderboardRepo{entries: seedEntries(5)}
	svc := NewLeaderboardService(repo, client)
	ctx := context.Background()

	_, err := svc.GetLeaderboard(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	svc.InvalidateCache(ctx)

	_, err = svc.GetLeaderboard(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestGetLeaderboardWorksWithoutRedis(t *testing.T) {
	repo := &fakeLeaderboardRepo{entries: seedEntries(2)}
	svc := NewLeaderboardService(repo, nil)

	got, err := svc.GetLeaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// no-op without a client
	svc.InvalidateCache(context.Background())
}

func TestGetLeaderboardRepoError(t *testing.T) {
	repo := &fakeLeaderboardRepo{err: errors.New("db down")}
	svc := NewLeaderboardService(repo, nil)

	_, err := svc.GetLeaderboard(context.Background(), 10)
	assert.Error(t, err)
}
