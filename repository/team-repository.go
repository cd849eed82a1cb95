package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultTeamRole = "Member"

type TeamMember struct {
	ID            int          `gorm:"primaryKey"`
	ProjectID     int          `gorm:"not null;uniqueIndex:idx_project_participant"`
	ParticipantID int          `gorm:"not null;uniqueIndex:idx_project_participant"`
	Participant   *Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
	Role          string       `gorm:"not null"`
	JoinedAt      time.Time    `gorm:"not null"`
}

type TeamRepository interface {
	// AddMember returns ErrDuplicate when the participant is already on the project's team
	// and ErrNotFound when either side no longer exists.
	AddMember(ctx context.Context, member *TeamMember) (*TeamMember, error)
	GetMembersForProject(ctx context.Context, projectID int) ([]*TeamMember, error)
}

type teamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{DB: db}
}

func (r *teamRepository) AddMember(ctx context.Context, member *TeamMember) (*TeamMember, error) {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(member)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	created := &TeamMember{}
	result = r.DB.WithContext(ctx).Preload("Participant").First(created, member.ID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return created, nil
}

func (r *teamRepository) GetMembersForProject(ctx context.Context, projectID int) ([]*TeamMember, error) {
	members := make([]*TeamMember, 0)
	result := r.DB.WithContext(ctx).
		Preload("Participant").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Order("id ASC").
		Find(&members)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return members, nil
}
