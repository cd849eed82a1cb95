package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HackathonStatus string

const (
	HackathonDraft     HackathonStatus = "draft"
	HackathonActive    HackathonStatus = "active"
	HackathonCompleted HackathonStatus = "completed"
)

func (s HackathonStatus) Valid() bool {
	switch s {
	case HackathonDraft, HackathonActive, HackathonCompleted:
		return true
	}
	return false
}

type Hackathon struct {
	ID          int             `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	StartDate   *time.Time      `gorm:"null"`
	EndDate     *time.Time      `gorm:"null"`
	Status      HackathonStatus `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

type HackathonRepository interface {
	Create(ctx context.Context, hackathon *Hackathon) (*Hackathon, error)
	GetByID(ctx context.Context, hackathonID int) (*Hackathon, error)
	// FindAll orders by start date, undated hackathons last.
	FindAll(ctx context.Context) ([]*Hackathon, error)
}

type hackathonRepository struct {
	DB *gorm.DB
}

func NewHackathonRepository(db *gorm.DB) HackathonRepository {
	return &hackathonRepository{DB: db}
}

func (r *hackathonRepository) Create(ctx context.Context, hackathon *Hackathon) (*Hackathon, error) {
	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(hackathon)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return hackathon, nil
}

func (r *hackathonRepository) GetByID(ctx context.Context, hackathonID int) (*Hackathon, error) {
	var hackathon Hackathon
	result := r.DB.WithContext(ctx).First(&hackathon, hackathonID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &hackathon, nil
}

func (r *hackathonRepository) FindAll(ctx context.Context) ([]*Hackathon, error) {
	defer observeQuery("FindAllHackathons").ObserveDuration()
	hackathons := make([]*Hackathon, 0)
	result := r.DB.WithContext(ctx).Order("start_date ASC NULLS LAST").Order("id ASC").Find(&hackathons)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return hackathons, nil
}
