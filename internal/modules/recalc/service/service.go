package recalc

import (
	"context"
	"time"

	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	pointsService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/points/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BatchSize matches the underlying store's atomic write-group limit.
const BatchSize = 400

const defaultWorkers = 4

// RecalcService is the batch reconciliation engine: it recomputes every
// user's score from raw facts and republishes it to the profile record and
// the leaderboard record. Concurrent runs against the same users are not
// safe; deployments must run at most one job at a time.
type RecalcService interface {
	RecalculateAll(ctx context.Context) *Report
}

type recalcService struct {
	repo    repository.RecalcRepository
	badges  badgeService.BadgeService
	points  pointsService.PointsService
	workers int
	log     *logrus.Logger
}

func NewRecalcService(repo repository.RecalcRepository, badges badgeService.BadgeService, points pointsService.PointsService, workers int, log *logrus.Logger) RecalcService {
	if workers < 1 {
		workers = defaultWorkers
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &recalcService{
		repo:    repo,
		badges:  badges,
		points:  points,
		workers: workers,
		log:     log,
	}
}

// outcome is one user's result: either a staged write plus its delta, or a
// load error. Each user is computed in isolation; nothing is shared between
// user computations.
type outcome struct {
	staged *repository.StagedWrite
	delta  UserDelta
	err    *UserError
}

func (s *recalcService) RecalculateAll(ctx context.Context) *Report {
	report := &Report{Status: StatusCompleted, StartedAt: time.Now()}
	defer func() { report.FinishedAt = time.Now() }()

	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		report.Status = StatusFailed
		report.RunError = err.Error()
		s.log.WithError(err).Error("recalculation aborted: cannot enumerate users")
		return report
	}

	s.log.WithFields(logrus.Fields{"users": len(ids), "workers": s.workers}).Info("recalculation started")

	jobs := make(chan uuid.UUID)
	results := make(chan outcome, len(ids))

	for i := 0; i < s.workers; i++ {
		go func() {
			for id := range jobs {
				results <- s.processUser(ctx, id)
			}
		}()
	}
	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
	}()

	batch := make([]repository.StagedWrite, 0, BatchSize)
	pending := make([]UserDelta, 0, BatchSize)
	batchIndex := 0
	cancelled := false

	for i := 0; i < len(ids); i++ {
		out := <-results
		if out.err != nil {
			report.UserErrors = append(report.UserErrors, *out.err)
			continue
		}
		batch = append(batch, *out.staged)
		pending = append(pending, out.delta)

		if len(batch) == BatchSize {
			// cancellation takes effect only at batch boundaries, never
			// mid-batch; a cancelled run commits nothing further
			if ctx.Err() != nil {
				cancelled = true
				break
			}
			batchIndex++
			s.commitBatch(ctx, batchIndex, batch, pending, report)
			batch = batch[:0]
			pending = pending[:0]
		}
	}

	if !cancelled && len(batch) > 0 {
		if ctx.Err() != nil {
			cancelled = true
		} else {
			batchIndex++
			s.commitBatch(ctx, batchIndex, batch, pending, report)
		}
	}

	if cancelled {
		report.Status = StatusFailed
		report.RunError = ctx.Err().Error()
		s.log.Warn("recalculation cancelled at batch boundary")
		return report
	}

	s.log.WithFields(logrus.Fields{
		"processed":    report.Processed,
		"user_errors":  len(report.UserErrors),
		"batch_errors": len(report.BatchErrors),
	}).Info("recalculation completed")
	return report
}

func (s *recalcService) processUser(ctx context.Context, id uuid.UUID) outcome {
	facts, err := s.repo.LoadFacts(ctx, id)
	if err != nil {
		return outcome{err: &UserError{UserID: id, Err: err.Error()}}
	}

	achievements := s.badges.Evaluate(facts, facts.PreviousBadges)
	score := s.points.ComputeScore(facts, achievements)

	var photoURL *string
	if facts.PhotoURL != "" {
		u := facts.PhotoURL
		photoURL = &u
	}

	return outcome{
		staged: &repository.StagedWrite{
			UserID:       id,
			Name:         facts.Name,
			PhotoURL:     photoURL,
			Role:         facts.Role,
			Points:       score.TotalPoints,
			Achievements: score.Achievements,
			ScannedAt:    time.Now(),
		},
		delta: UserDelta{UserID: id, Before: facts.PreviousPoints, After: score.TotalPoints},
	}
}

// commitBatch commits one write group. A failure is recorded and the run moves
// on; batches already committed stay committed.
func (s *recalcService) commitBatch(ctx context.Context, index int, batch []repository.StagedWrite, pending []UserDelta, report *Report) {
	if err := s.repo.CommitBatch(ctx, batch); err != nil {
		report.BatchErrors = append(report.BatchErrors, BatchError{Batch: index, Users: len(batch), Err: err.Error()})
		s.log.WithError(err).WithField("batch", index).Error("batch commit failed")
		return
	}
	report.Processed += len(batch)
	report.Deltas = append(report.Deltas, pending...)
}
