package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the persistence gateway handed to the services. Every field must be set.
type Store struct {
	Hackathons   HackathonRepository
	Participants ParticipantRepository
	Projects     ProjectRepository
	Teams        TeamRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Hackathons:   NewHackathonRepository(db),
		Participants: NewParticipantRepository(db),
		Projects:     NewProjectRepository(db),
		Teams:        NewTeamRepository(db),
	}
}

type Pagination struct {
	Limit  int
	Offset int
}

type ParticipantFilter struct {
	Pagination
	// Skills must all be present on a participant, compared case-insensitively.
	Skills []string
	// Search matches name or email as a case-insensitive substring.
	Search string
}

type ProjectFilter struct {
	Pagination
	HackathonID *int
	Status      ProjectStatus
	Tag         string
	// Search matches title or description as a case-insensitive substring.
	Search string
}

// translate maps driver errors onto the gateway's own error values.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func paginate(query *gorm.DB, p Pagination) *gorm.DB {
	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	if p.Offset > 0 {
		query = query.Offset(p.Offset)
	}
	return query
}
