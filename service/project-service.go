package service

import (
	"context"
	"errors"
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/utils"
	"strings"
)

type ProjectService struct {
	projectRepository   repository.ProjectRepository
	hackathonRepository repository.HackathonRepository
}

func NewProjectService(store *repository.Store) *ProjectService {
	return &ProjectService{
		projectRepository:   store.Projects,
		hackathonRepository: store.Hackathons,
	}
}

type ProjectUpdate struct {
	Title       *string
	Description *string
	Status      *repository.ProjectStatus
	Tags        []string
}

func normalizeProject(project *repository.Project) error {
	var err error
	if project.Title, err = requireText("title", project.Title); err != nil {
		return err
	}
	project.Description = strings.TrimSpace(project.Description)
	if project.Status == "" {
		project.Status = repository.ProjectDraft
	}
	if !project.Status.Valid() {
		return app_error.InvalidArgument("invalid project status: %s", project.Status)
	}
	project.Tags = utils.CleanList(project.Tags)
	return nil
}

func (e *ProjectService) CreateProject(ctx context.Context, project *repository.Project) (*repository.Project, error) {
	if err := normalizeProject(project); err != nil {
		return nil, err
	}
	// projects start unscored; only the jury sets a score
	project.Score = nil
	if _, err := e.hackathonRepository.GetByID(ctx, project.HackathonID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Hackathon not found.")
		}
		return nil, app_error.Internal(err)
	}
	created, err := e.projectRepository.Create(ctx, project)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Hackathon not found.")
		}
		return nil, app_error.Internal(err)
	}
	return created, nil
}

func (e *ProjectService) GetProjectById(ctx context.Context, projectId int) (*repository.Project, error) {
	project, err := e.projectRepository.GetByID(ctx, projectId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Project not found.")
		}
		return nil, app_error.Internal(err)
	}
	return project, nil
}

func (e *ProjectService) ListProjects(ctx context.Context, filter repository.ProjectFilter) (*Page[*repository.Project], error) {
	pagination, err := NormalizePagination(filter.Pagination)
	if err != nil {
		return nil, err
	}
	filter.Pagination = pagination
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, app_error.InvalidArgument("invalid project status: %s", filter.Status)
	}
	filter.Tag = strings.TrimSpace(filter.Tag)
	filter.Search = strings.TrimSpace(filter.Search)

	projects, total, err := e.projectRepository.Find(ctx, filter)
	if err != nil {
		return nil, app_error.Internal(err)
	}
	return &Page[*repository.Project]{
		Items:  projects,
		Total:  total,
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}, nil
}

func (e *ProjectService) UpdateProject(ctx context.Context, projectId int, update *ProjectUpdate) (*repository.Project, error) {
	project, err := e.GetProjectById(ctx, projectId)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.Tags != nil {
		project.Tags = update.Tags
	}
	if err := normalizeProject(project); err != nil {
		return nil, err
	}
	updated, err := e.projectRepository.Update(ctx, project)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Project not found.")
		}
		return nil, app_error.Internal(err)
	}
	return updated, nil
}

func (e *ProjectService) DeleteProject(ctx context.Context, projectId int) error {
	if err := e.projectRepository.Delete(ctx, projectId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return app_error.NotFound("Project not found.")
		}
		return app_error.Internal(err)
	}
	return nil
}
