package service

import (
	"context"
	"errors"
	"hackaplan/app_error"
	"hackaplan/metrics"
	"hackaplan/repository"
	"log/slog"
	"math"
	"time"
)

const (
	PodiumSize = 3
	MinScore   = 0.0
	MaxScore   = 100.0
)

type ScoreEvent struct {
	ProjectID   int       `json:"project_id"`
	HackathonID int       `json:"hackathon_id"`
	Score       float64   `json:"score"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// ScorePublisher receives every score after it has been persisted.
type ScorePublisher interface {
	Name() string
	PublishScore(ctx context.Context, event ScoreEvent) error
}

type JuryService struct {
	projectRepository repository.ProjectRepository
	publishers        []ScorePublisher
}

func NewJuryService(store *repository.Store, publishers ...ScorePublisher) *JuryService {
	return &JuryService{
		projectRepository: store.Projects,
		publishers:        publishers,
	}
}

func ValidateScore(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) || score < MinScore || score > MaxScore {
		return app_error.InvalidArgument("Score must be a number between 0 and 100.")
	}
	return nil
}

// AssignScore overwrites the project's score. Repeating the call with the same
// score leaves the project unchanged.
func (e *JuryService) AssignScore(ctx context.Context, projectId int, score float64) (*repository.Project, error) {
	if err := ValidateScore(score); err != nil {
		return nil, err
	}
	project, err := e.projectRepository.UpdateScore(ctx, projectId, score)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Project not found.")
		}
		return nil, app_error.Internal(err)
	}
	metrics.ScoresAssignedCounter.Inc()
	e.publish(ctx, ScoreEvent{
		ProjectID:   project.ID,
		HackathonID: project.HackathonID,
		Score:       score,
		AssignedAt:  time.Now(),
	})
	return project, nil
}

// publish never fails the request: the score is already stored.
func (e *JuryService) publish(ctx context.Context, event ScoreEvent) {
	for _, publisher := range e.publishers {
		outcome := "ok"
		if err := publisher.PublishScore(ctx, event); err != nil {
			outcome = "error"
			slog.Warn("failed to publish score event",
				"publisher", publisher.Name(),
				"project_id", event.ProjectID,
				"error", err,
			)
		}
		metrics.ScoreEventsPublishedCounter.WithLabelValues(publisher.Name(), outcome).Inc()
	}
}

// ComputePodium returns up to PodiumSize projects ordered by score descending.
// Unscored projects rank after scored ones and equal scores are ordered by id.
func (e *JuryService) ComputePodium(ctx context.Context, hackathonId int) ([]*repository.Project, error) {
	projects, err := e.projectRepository.Ranked(ctx, hackathonId, PodiumSize)
	if err != nil {
		return nil, app_error.Internal(err)
	}
	if len(projects) == 0 {
		return nil, app_error.NotFound("No projects found for this hackathon to determine podiums.")
	}
	metrics.PodiumsComputedCounter.Inc()
	return projects, nil
}

// ProjectsForReview lists projects with their hackathon and team, optionally for one hackathon.
func (e *JuryService) ProjectsForReview(ctx context.Context, hackathonId *int) ([]*repository.Project, error) {
	projects, _, err := e.projectRepository.Find(ctx, repository.ProjectFilter{HackathonID: hackathonId})
	if err != nil {
		return nil, app_error.Internal(err)
	}
	return projects, nil
}
