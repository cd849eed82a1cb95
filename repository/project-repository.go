package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectStatus string

const (
	ProjectDraft      ProjectStatus = "draft"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectSubmitted  ProjectStatus = "submitted"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectDraft, ProjectInProgress, ProjectCompleted, ProjectSubmitted:
		return true
	}
	return false
}

type Project struct {
	ID          int            `gorm:"primaryKey"`
	Title       string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	HackathonID int            `gorm:"not null;index"`
	Hackathon   *Hackathon     `gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
	Score       *float64       `gorm:"null"`
	Status      ProjectStatus  `gorm:"not null"`
	Tags        pq.StringArray `gorm:"not null;type:text[]"`
	Team        []*TeamMember  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// ProjectRepository returns projects with their hackathon and team (members with participants) loaded.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	GetByID(ctx context.Context, projectID int) (*Project, error)
	// Find returns one page of matches ordered by title and the number of matches before paging.
	Find(ctx context.Context, filter ProjectFilter) ([]*Project, int64, error)
	// Ranked orders a hackathon's projects by score descending, unscored last, ties by id.
	Ranked(ctx context.Context, hackathonID int, limit int) ([]*Project, error)
	// Update overwrites title, description, status and tags.
	Update(ctx context.Context, project *Project) (*Project, error)
	UpdateScore(ctx context.Context, projectID int, score float64) (*Project, error)
	Delete(ctx context.Context, projectID int) error
}

var projectColumns = []string{"title", "description", "status", "tags", "updated_at"}

type projectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{DB: db}
}

func (r *projectRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Hackathon").
		Preload("Team", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC").Order("id ASC")
		}).
		Preload("Team.Participant")
}

func (r *projectRepository) Create(ctx context.Context, project *Project) (*Project, error) {
	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(project)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return r.GetByID(ctx, project.ID)
}

func (r *projectRepository) GetByID(ctx context.Context, projectID int) (*Project, error) {
	var project Project
	result := r.withRelations(ctx).First(&project, projectID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &project, nil
}

func (r *projectRepository) Find(ctx context.Context, filter ProjectFilter) ([]*Project, int64, error) {
	defer observeQuery("FindProjects").ObserveDuration()
	query := r.DB.WithContext(ctx).Model(&Project{})
	if filter.HackathonID != nil {
		query = query.Where("hackathon_id = ?", *filter.HackathonID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tag != "" {
		query = query.Where("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE lower(t) = lower(?))", filter.Tag)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	projects := make([]*Project, 0)
	page := paginate(query.Order("title ASC").Order("id ASC"), filter.Pagination)
	result := page.Preload("Hackathon").
		Preload("Team", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC").Order("id ASC")
		}).
		Preload("Team.Participant").
		Find(&projects)
	if result.Error != nil {
		return nil, 0, translate(result.Error)
	}
	return projects, total, nil
}

func (r *projectRepository) Ranked(ctx context.Context, hackathonID int, limit int) ([]*Project, error) {
	defer observeQuery("RankedProjects").ObserveDuration()
	projects := make([]*Project, 0)
	query := r.withRelations(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("score DESC NULLS LAST").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&projects); result.Error != nil {
		return nil, translate(result.Error)
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *Project) (*Project, error) {
	project.UpdatedAt = time.Now()
	result := r.DB.WithContext(ctx).Model(project).Omit(clause.Associations).Select(projectColumns).Updates(project)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, project.ID)
}

func (r *projectRepository) UpdateScore(ctx context.Context, projectID int, score float64) (*Project, error) {
	result := r.DB.WithContext(ctx).Model(&Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{"score": score, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, projectID)
}

func (r *projectRepository) Delete(ctx context.Context, projectID int) error {
	result := r.DB.WithContext(ctx).Delete(&Project{}, projectID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
