package recalc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	pointsService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/points/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecalcRepo is an in-memory stand-in for the store boundary. Facts are
// keyed by user id; commits are captured per call so batch boundaries are
// observable.
type fakeRecalcRepo struct {
	mu    sync.Mutex
	ids   []uuid.UUID
	facts map[uuid.UUID]model.UserFacts

	listErr   error
	failFacts map[uuid.UUID]error
	commitErr func(call int) error
	onCommit  func(call int)

	commitCalls int
	commits     [][]repository.StagedWrite
}

func newFakeRepo(n int) *fakeRecalcRepo {
	f := &fakeRecalcRepo{
		facts:     make(map[uuid.UUID]model.UserFacts),
		failFacts: make(map[uuid.UUID]error),
	}
	for i := 0; i < n; i++ {
		id := uuid.New()
		f.ids = append(f.ids, id)
		f.facts[id] = model.UserFacts{
			Name:      fmt.Sprintf("user-%d", i),
			Role:      "member",
			Followers: i % 5,
			Today:     "2025-03-10",
		}
	}
	return f
}

func (f *fakeRecalcRepo) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ids, nil
}

func (f *fakeRecalcRepo) LoadFacts(ctx context.Context, userID uuid.UUID) (model.UserFacts, error) {
	if err, ok := f.failFacts[userID]; ok {
		return model.UserFacts{}, err
	}
	return f.facts[userID], nil
}

func (f *fakeRecalcRepo) CommitBatch(ctx context.Context, writes []repository.StagedWrite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := f.commitCalls
	f.commitCalls++
	if f.commitErr != nil {
		if err := f.commitErr(call); err != nil {
			return err
		}
	}
	batch := make([]repository.StagedWrite, len(writes))
	copy(batch, writes)
	f.commits = append(f.commits, batch)
	if f.onCommit != nil {
		f.onCommit(call)
	}
	return nil
}

func (f *fakeRecalcRepo) committed() map[uuid.UUID]repository.StagedWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uuid.UUID]repository.StagedWrite)
	for _, batch := range f.commits {
		for _, w := range batch {
			out[w.UserID] = w
		}
	}
	return out
}

func newService(repo repository.RecalcRepository) RecalcService {
	return NewRecalcService(repo, badgeService.NewBadgeService(), pointsService.NewPointsService(pointsService.DefaultWeights()), 4, nil)
}

func TestRecalculateAllSmallRun(t *testing.T) {
	repo := newFakeRepo(10)
	report := newService(repo).RecalculateAll(context.Background())

	assert.Equal(t, StatusCompleted, report.Status)
	assert.Equal(t, 10, report.Processed)
	assert.Empty(t, report.UserErrors)
	assert.Empty(t, report.BatchErrors)
	require.Len(t, repo.commits, 1)
	assert.Len(t, repo.committed(), 10)
}

// 401 users must produce exactly two commits: a full batch of 400 and a
// trailing batch of 1.
func TestRecalculateAllBatchBoundary(t *testing.T) {
	repo := newFakeRepo(BatchSize + 1)
	report := newService(repo).RecalculateAll(context.Background())

	assert.Equal(t, StatusCompleted, report.Status)
	assert.Equal(t, BatchSize+1, report.Processed)
	require.Len(t, repo.commits, 2)

	sizes := []int{len(repo.commits[0]), len(repo.commits[1])}
	assert.ElementsMatch(t, []int{BatchSize, 1}, sizes)
	assert.Len(t, repo.committed(), BatchSize+1)
}

func TestRecalculateAllUserFailureIsIsolated(t *testing.T) {
	repo := newFakeRepo(20)
	bad := repo.ids[7]
	repo.failFacts[bad] = errors.New("boom")

	report := newService(repo).RecalculateAll(context.Background())

	assert.Equal(t, StatusCompleted, report.Status)
	assert.Equal(t, 19, report.Processed)
	require.Len(t, report.UserErrors, 1)
	assert.Equal(t, bad, report.UserErrors[0].UserID)
	assert.Contains(t, report.UserErrors[0].Err, "boom")

	committed := repo.committed()
	assert.Len(t, committed, 19)
	_, ok := committed[bad]
	assert.False(t, ok, "failed user must not be committed")
}

func TestRecalculateAllBatchCommitFailureContinues(t *testing.T) {
	repo := newFakeRepo(BatchSize + 50)
	repo.commitErr = func(call int) error {
		if call == 0 {
			return errors.New("write group rejected")
		}
		return nil
	}

	report := newService(repo).RecalculateAll(context.Background())

	assert.Equal(t, StatusCompleted, report.Status)
	require.Len(t, report.BatchErrors, 1)
	assert.Equal(t, 1, report.BatchErrors[0].Batch)
	assert.Equal(t, BatchSize, report.BatchErrors[0].Users)

	// only the second batch landed
	assert.Equal(t, 50, report.Processed)
	require.Len(t, repo.commits, 1)
	assert.Len(t, repo.commits[0], 50)
}

func TestRecalculateAllListFailure(t *testing.T) {
	repo := newFakeRepo(0)
	repo.listErr = errors.New("db down")

	report := newService(repo).RecalculateAll(context.Background())

	assert.Equal(t, StatusFailed, report.Status)
	assert.Contains(t, report.RunError, "db down")
	assert.Zero(t, report.Processed)
}

func TestRecalculateAllCancellationStopsAtBatchBoundary(t *testing.T) {
	repo := newFakeRepo(2*BatchSize + 100)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo.onCommit = func(call int) {
		if call == 0 {
			cancel() // cancellation arrives while the first batch commits
		}
	}

	report := newService(repo).RecalculateAll(ctx)

	assert.Equal(t, StatusFailed, report.Status)
	assert.NotEmpty(t, report.RunError)

	// the first batch is committed whole; nothing after it is
	require.Len(t, repo.commits, 1)
	assert.Len(t, repo.commits[0], BatchSize)
	assert.Equal(t, BatchSize, report.Processed)
}

// A cancellation that lands before the first boundary must commit nothing,
// even when the whole run would fit in a single batch.
func TestRecalculateAllCancelledRunCommitsNothing(t *testing.T) {
	repo := newFakeRepo(10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the run starts

	report := newService(repo).RecalculateAll(ctx)

	assert.Equal(t, StatusFailed, report.Status)
	assert.NotEmpty(t, report.RunError)
	assert.Zero(t, report.Processed)
	assert.Empty(t, repo.commits)
}

func TestRecalculateAllDeltasReportPreviousPoints(t *testing.T) {
	repo := newFakeRepo(3)
	id := repo.ids[0]
	f := repo.facts[id]
	f.Followers = 2
	f.PreviousPoints = 999
	repo.facts[id] = f

	report := newService(repo).RecalculateAll(context.Background())
	require.Equal(t, StatusCompleted, report.Status)

	var delta *UserDelta
	for i := range report.Deltas {
		if report.Deltas[i].UserID == id {
			delta = &report.Deltas[i]
		}
	}
	require.NotNil(t, delta)
	assert.Equal(t, 999, delta.Before)
	assert.Equal(t, 20, delta.After) // 2 followers * 10
}

// Running twice over unchanged facts produces identical committed scores.
func TestRecalculateAllIdempotent(t *testing.T) {
	repo := newFakeRepo(25)
	svc := newService(repo)

	r1 := svc.RecalculateAll(context.Background())
	first := repo.committed()
	r2 := svc.RecalculateAll(context.Background())
	second := repo.committed()

	require.Equal(t, StatusCompleted, r1.Status)
	require.Equal(t, StatusCompleted, r2.Status)
	for id, w1 := range first {
		w2, ok := second[id]
		require.True(t, ok)
		assert.Equal(t, w1.Points, w2.Points)
		assert.Equal(t, w1.Achievements, w2.Achievements)
	}
}
