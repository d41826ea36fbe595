package repository

import (
	"context"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Star records a distinct stargazer and bumps the cached star count in one
	// transaction. Returns false when the user had already starred the project.
	Star(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	Unstar(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectStar{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, "id = ?", id).Error
	})
}

func (r *projectRepository) Star(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	starred := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.ProjectStar{ProjectID: projectID, UserID: userID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		starred = true
		return tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			UpdateColumn("star_count", gorm.Expr("star_count + 1")).Error
	})
	return starred, err
}

func (r *projectRepository) Unstar(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	unstarred := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("project_id = ? AND user_id = ?", projectID, userID).
			Delete(&model.ProjectStar{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		unstarred = true
		return tx.Model(&model.Project{}).
			Where("id = ? AND star_count > 0", projectID).
			UpdateColumn("star_count", gorm.Expr("star_count - 1")).Error
	})
	return unstarred, err
}
