package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Participant struct {
	ID          int            `gorm:"primaryKey"`
	Name        string         `gorm:"not null"`
	Email       string         `gorm:"not null;uniqueIndex:idx_participants_email"`
	Skills      pq.StringArray `gorm:"not null;type:text[]"`
	Bio         string         `gorm:"not null"`
	AvatarURL   string         `gorm:"not null"`
	GithubURL   string         `gorm:"not null"`
	LinkedinURL string         `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

type ParticipantRepository interface {
	// Create returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, participant *Participant) (*Participant, error)
	GetByID(ctx context.Context, participantID int) (*Participant, error)
	// Find returns one page of matches and the number of matches before paging.
	Find(ctx context.Context, filter ParticipantFilter) ([]*Participant, int64, error)
	// Update overwrites every mutable field; ErrDuplicate when the email is taken.
	Update(ctx context.Context, participant *Participant) (*Participant, error)
	Delete(ctx context.Context, participantID int) error
}

var participantColumns = []string{"name", "email", "skills", "bio", "avatar_url", "github_url", "linkedin_url", "updated_at"}

type participantRepository struct {
	DB *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *Participant) (*Participant, error) {
	result := r.DB.WithContext(ctx).Create(participant)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return participant, nil
}

func (r *participantRepository) GetByID(ctx context.Context, participantID int) (*Participant, error) {
	var participant Participant
	result := r.DB.WithContext(ctx).First(&participant, participantID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &participant, nil
}

func (r *participantRepository) Find(ctx context.Context, filter ParticipantFilter) ([]*Participant, int64, error) {
	defer observeQuery("FindParticipants").ObserveDuration()
	query := r.DB.WithContext(ctx).Model(&Participant{})
	for _, skill := range filter.Skills {
		query = query.Where("EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE lower(s) = lower(?))", skill)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("(name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	participants := make([]*Participant, 0)
	result := paginate(query.Order("name ASC").Order("id ASC"), filter.Pagination).Find(&participants)
	if result.Error != nil {
		return nil, 0, translate(result.Error)
	}
	return participants, total, nil
}

func (r *participantRepository) Update(ctx context.Context, participant *Participant) (*Participant, error) {
	participant.UpdatedAt = time.Now()
	result := r.DB.WithContext(ctx).Model(participant).Select(participantColumns).Updates(participant)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, participant.ID)
}

func (r *participantRepository) Delete(ctx context.Context, participantID int) error {
	result := r.DB.WithContext(ctx).Delete(&Participant{}, participantID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
