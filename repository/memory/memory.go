// Package memory is an in-process implementation of the repository gateway.
// Each Store owns its data, so tests can run in parallel against separate
// instances. It enforces the same uniqueness and cascade rules as the
// postgres schema.
package memory

import (
	"context"
	"fmt"
	"hackaplan/repository"
	"hackaplan/utils"
	"sort"
	"strings"
	"sync"
	"time"
)

type db struct {
	mu           sync.RWMutex
	lastID       int
	hackathons   map[int]*repository.Hackathon
	participants map[int]*repository.Participant
	projects     map[int]*repository.Project
	members      map[int]*repository.TeamMember
	now          func() time.Time
}

func NewStore() *repository.Store {
	d := &db{
		hackathons:   make(map[int]*repository.Hackathon),
		participants: make(map[int]*repository.Participant),
		projects:     make(map[int]*repository.Project),
		members:      make(map[int]*repository.TeamMember),
		now:          time.Now,
	}
	return &repository.Store{
		Hackathons:   &hackathonRepository{d},
		Participants: &participantRepository{d},
		Projects:     &projectRepository{d},
		Teams:        &teamRepository{d},
	}
}

// nextID is shared by all tables, which keeps ids unique across the store.
func (d *db) nextID() int {
	d.lastID++
	return d.lastID
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneHackathon(h *repository.Hackathon) *repository.Hackathon {
	c := *h
	return &c
}

func cloneParticipant(p *repository.Participant) *repository.Participant {
	c := *p
	c.Skills = copyStrings(p.Skills)
	return &c
}

func (d *db) cloneMember(m *repository.TeamMember) *repository.TeamMember {
	c := *m
	if p, ok := d.participants[m.ParticipantID]; ok {
		c.Participant = cloneParticipant(p)
	}
	return &c
}

func (d *db) teamOf(projectID int) []*repository.TeamMember {
	team := make([]*repository.TeamMember, 0)
	for _, m := range d.members {
		if m.ProjectID == projectID {
			team = append(team, d.cloneMember(m))
		}
	}
	sort.Slice(team, func(i, j int) bool {
		if !team[i].JoinedAt.Equal(team[j].JoinedAt) {
			return team[i].JoinedAt.Before(team[j].JoinedAt)
		}
		return team[i].ID < team[j].ID
	})
	return team
}

func (d *db) cloneProject(p *repository.Project) *repository.Project {
	c := *p
	c.Tags = copyStrings(p.Tags)
	if p.Score != nil {
		score := *p.Score
		c.Score = &score
	}
	if h, ok := d.hackathons[p.HackathonID]; ok {
		c.Hackathon = cloneHackathon(h)
	}
	c.Team = d.teamOf(p.ID)
	return &c
}

func containsFold(value string, search string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(search))
}

type hackathonRepository struct{ *db }

func (r *hackathonRepository) Create(_ context.Context, hackathon *repository.Hackathon) (*repository.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneHackathon(hackathon)
	stored.ID = r.nextID()
	stored.CreatedAt = r.now()
	r.hackathons[stored.ID] = stored
	return cloneHackathon(stored), nil
}

func (r *hackathonRepository) GetByID(_ context.Context, hackathonID int) (*repository.Hackathon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hackathons[hackathonID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneHackathon(h), nil
}

func (r *hackathonRepository) FindAll(_ context.Context) ([]*repository.Hackathon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hackathons := make([]*repository.Hackathon, 0, len(r.hackathons))
	for _, h := range r.hackathons {
		hackathons = append(hackathons, cloneHackathon(h))
	}
	sort.Slice(hackathons, func(i, j int) bool {
		a, b := hackathons[i].StartDate, hackathons[j].StartDate
		switch {
		case a == nil && b == nil:
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		}
		return hackathons[i].ID < hackathons[j].ID
	})
	return hackathons, nil
}

type participantRepository struct{ *db }

func (r *participantRepository) emailTaken(email string, exceptID int) bool {
	for _, p := range r.participants {
		if p.ID != exceptID && p.Email == email {
			return true
		}
	}
	return false
}

func (r *participantRepository) Create(_ context.Context, participant *repository.Participant) (*repository.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(participant.Email, 0) {
		return nil, fmt.Errorf("%w: email %s", repository.ErrDuplicate, participant.Email)
	}
	stored := cloneParticipant(participant)
	stored.ID = r.nextID()
	stored.CreatedAt = r.now()
	stored.UpdatedAt = stored.CreatedAt
	r.participants[stored.ID] = stored
	return cloneParticipant(stored), nil
}

func (r *participantRepository) GetByID(_ context.Context, participantID int) (*repository.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.participants[participantID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneParticipant(p), nil
}

func (r *participantRepository) Find(_ context.Context, filter repository.ParticipantFilter) ([]*repository.Participant, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]*repository.Participant, 0)
	for _, p := range r.participants {
		if !hasAllSkills(p.Skills, filter.Skills) {
			continue
		}
		if filter.Search != "" && !containsFold(p.Name, filter.Search) && !containsFold(p.Email, filter.Search) {
			continue
		}
		matches = append(matches, cloneParticipant(p))
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	return page(matches, filter.Pagination), int64(len(matches)), nil
}

func hasAllSkills(skills []string, required []string) bool {
	for _, skill := range required {
		if !utils.ContainsFold(skills, skill) {
			return false
		}
	}
	return true
}

func page[A any](items []A, p repository.Pagination) []A {
	if p.Limit <= 0 {
		return utils.Page(items, len(items), p.Offset)
	}
	return utils.Page(items, p.Limit, p.Offset)
}

func (r *participantRepository) Update(_ context.Context, participant *repository.Participant) (*repository.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.participants[participant.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if r.emailTaken(participant.Email, participant.ID) {
		return nil, fmt.Errorf("%w: email %s", repository.ErrDuplicate, participant.Email)
	}
	stored := cloneParticipant(participant)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.now()
	r.participants[stored.ID] = stored
	return cloneParticipant(stored), nil
}

func (r *participantRepository) Delete(_ context.Context, participantID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[participantID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.participants, participantID)
	for id, m := range r.members {
		if m.ParticipantID == participantID {
			delete(r.members, id)
		}
	}
	return nil
}

type projectRepository struct{ *db }

func (r *projectRepository) Create(_ context.Context, project *repository.Project) (*repository.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hackathons[project.HackathonID]; !ok {
		return nil, fmt.Errorf("%w: hackathon %d", repository.ErrNotFound, project.HackathonID)
	}
	stored := r.cloneProject(project)
	stored.ID = r.nextID()
	stored.Hackathon = nil
	stored.Team = nil
	stored.CreatedAt = r.now()
	stored.UpdatedAt = stored.CreatedAt
	r.projects[stored.ID] = stored
	return r.cloneProject(stored), nil
}

func (r *projectRepository) GetByID(_ context.Context, projectID int) (*repository.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[projectID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.cloneProject(p), nil
}

func (r *projectRepository) Find(_ context.Context, filter repository.ProjectFilter) ([]*repository.Project, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]*repository.Project, 0)
	for _, p := range r.projects {
		if filter.HackathonID != nil && p.HackathonID != *filter.HackathonID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Tag != "" && !utils.ContainsFold(p.Tags, filter.Tag) {
			continue
		}
		if filter.Search != "" && !containsFold(p.Title, filter.Search) && !containsFold(p.Description, filter.Search) {
			continue
		}
		matches = append(matches, p)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Title != matches[j].Title {
			return matches[i].Title < matches[j].Title
		}
		return matches[i].ID < matches[j].ID
	})
	return utils.Map(page(matches, filter.Pagination), r.cloneProject), int64(len(matches)), nil
}

func (r *projectRepository) Ranked(_ context.Context, hackathonID int, limit int) ([]*repository.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ranked := make([]*repository.Project, 0)
	for _, p := range r.projects {
		if p.HackathonID == hackathonID {
			ranked = append(ranked, p)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i].Score, ranked[j].Score
		switch {
		case a == nil && b == nil:
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		}
		return ranked[i].ID < ranked[j].ID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return utils.Map(ranked, r.cloneProject), nil
}

func (r *projectRepository) Update(_ context.Context, project *repository.Project) (*repository.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[project.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	existing.Title = project.Title
	existing.Description = project.Description
	existing.Status = project.Status
	existing.Tags = copyStrings(project.Tags)
	existing.UpdatedAt = r.now()
	return r.cloneProject(existing), nil
}

func (r *projectRepository) UpdateScore(_ context.Context, projectID int, score float64) (*repository.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[projectID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	existing.Score = &score
	existing.UpdatedAt = r.now()
	return r.cloneProject(existing), nil
}

func (r *projectRepository) Delete(_ context.Context, projectID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[projectID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.projects, projectID)
	for id, m := range r.members {
		if m.ProjectID == projectID {
			delete(r.members, id)
		}
	}
	return nil
}

type teamRepository struct{ *db }

func (r *teamRepository) AddMember(_ context.Context, member *repository.TeamMember) (*repository.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[member.ProjectID]; !ok {
		return nil, fmt.Errorf("%w: project %d", repository.ErrNotFound, member.ProjectID)
	}
	if _, ok := r.participants[member.ParticipantID]; !ok {
		return nil, fmt.Errorf("%w: participant %d", repository.ErrNotFound, member.ParticipantID)
	}
	for _, m := range r.members {
		if m.ProjectID == member.ProjectID && m.ParticipantID == member.ParticipantID {
			return nil, fmt.Errorf("%w: participant %d on project %d", repository.ErrDuplicate, member.ParticipantID, member.ProjectID)
		}
	}
	stored := *member
	stored.ID = r.nextID()
	stored.Participant = nil
	if stored.JoinedAt.IsZero() {
		stored.JoinedAt = r.now()
	}
	r.members[stored.ID] = &stored
	return r.cloneMember(&stored), nil
}

func (r *teamRepository) GetMembersForProject(_ context.Context, projectID int) ([]*repository.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.teamOf(projectID), nil
}
