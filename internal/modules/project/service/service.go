package project

import (
	"context"
	"errors"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/project/dto"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/project/repository"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateProjectInput) (*model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
	Star(ctx context.Context, projectID, userID uuid.UUID) error
	Unstar(ctx context.Context, projectID, userID uuid.UUID) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateProjectInput) (*model.Project, error) {
	project := &model.Project{
		UserID:      ownerID,
		Name:        input.Name,
		Description: input.Description,
		RepoURL:     input.RepoURL,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *projectService) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	if project.UserID != ownerID {
		return apperror.ErrForbidden
	}
	return s.repo.Delete(ctx, projectID)
}

func (s *projectService) Star(ctx context.Context, projectID, userID uuid.UUID) error {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	if project.UserID == userID {
		return apperror.New(400, "cannot star your own project", apperror.ErrBadRequest)
	}

	starred, err := s.repo.Star(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !starred {
		return apperror.New(409, "project already starred", apperror.ErrConflict)
	}
	return nil
}

func (s *projectService) Unstar(ctx context.Context, projectID, userID uuid.UUID) error {
	unstarred, err := s.repo.Unstar(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !unstarred {
		return apperror.ErrNotFound
	}
	return nil
}
