package service

import (
	"context"
	"errors"
	"hackaplan/app_error"
	"hackaplan/repository"
)

type HackathonService struct {
	hackathonRepository repository.HackathonRepository
	projectRepository   repository.ProjectRepository
}

func NewHackathonService(store *repository.Store) *HackathonService {
	return &HackathonService{
		hackathonRepository: store.Hackathons,
		projectRepository:   store.Projects,
	}
}

func (e *HackathonService) CreateHackathon(ctx context.Context, hackathon *repository.Hackathon) (*repository.Hackathon, error) {
	name, err := requireText("name", hackathon.Name)
	if err != nil {
		return nil, err
	}
	hackathon.Name = name
	if hackathon.Status == "" {
		hackathon.Status = repository.HackathonDraft
	}
	if !hackathon.Status.Valid() {
		return nil, app_error.InvalidArgument("invalid hackathon status: %s", hackathon.Status)
	}
	if hackathon.StartDate != nil && hackathon.EndDate != nil && hackathon.EndDate.Before(*hackathon.StartDate) {
		return nil, app_error.InvalidArgument("end date must not be before start date")
	}
	created, err := e.hackathonRepository.Create(ctx, hackathon)
	if err != nil {
		return nil, app_error.Internal(err)
	}
	return created, nil
}

func (e *HackathonService) GetAllHackathons(ctx context.Context) ([]*repository.Hackathon, error) {
	hackathons, err := e.hackathonRepository.FindAll(ctx)
	if err != nil {
		return nil, app_error.Internal(err)
	}
	return hackathons, nil
}

func (e *HackathonService) GetHackathonById(ctx context.Context, hackathonId int) (*repository.Hackathon, error) {
	hackathon, err := e.hackathonRepository.GetByID(ctx, hackathonId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Hackathon not found.")
		}
		return nil, app_error.Internal(err)
	}
	return hackathon, nil
}

// GetProjectsForHackathon returns every project of the hackathon ordered by title.
// An unknown hackathon simply has no projects.
func (e *HackathonService) GetProjectsForHackathon(ctx context.Context, hackathonId int) ([]*repository.Project, error) {
	projects, _, err := e.projectRepository.Find(ctx, repository.ProjectFilter{HackathonID: &hackathonId})
	if err != nil {
		return nil, app_error.Internal(err)
	}
	return projects, nil
}
