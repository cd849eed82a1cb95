package service

import (
	"context"
	"errors"
	"hackaplan/app_error"
	"hackaplan/metrics"
	"hackaplan/repository"
	"hackaplan/utils"
	"strings"
)

type ParticipantService struct {
	participantRepository repository.ParticipantRepository
	projectRepository     repository.ProjectRepository
	teamRepository        repository.TeamRepository
}

func NewParticipantService(store *repository.Store) *ParticipantService {
	return &ParticipantService{
		participantRepository: store.Participants,
		projectRepository:     store.Projects,
		teamRepository:        store.Teams,
	}
}

// ParticipantUpdate holds the fields of a partial update; nil means unchanged.
type ParticipantUpdate struct {
	Name        *string
	Email       *string
	Skills      []string
	Bio         *string
	AvatarURL   *string
	GithubURL   *string
	LinkedinURL *string
}

func normalizeParticipant(participant *repository.Participant) error {
	var err error
	if participant.Name, err = requireText("name", participant.Name); err != nil {
		return err
	}
	if participant.Email, err = normalizeEmail(participant.Email); err != nil {
		return err
	}
	if participant.AvatarURL, err = validateURL("avatar_url", participant.AvatarURL); err != nil {
		return err
	}
	if participant.GithubURL, err = validateURL("github_url", participant.GithubURL); err != nil {
		return err
	}
	if participant.LinkedinURL, err = validateURL("linkedin_url", participant.LinkedinURL); err != nil {
		return err
	}
	participant.Bio = strings.TrimSpace(participant.Bio)
	participant.Skills = utils.CleanList(participant.Skills)
	return nil
}

func (e *ParticipantService) CreateParticipant(ctx context.Context, participant *repository.Participant) (*repository.Participant, error) {
	if err := normalizeParticipant(participant); err != nil {
		return nil, err
	}
	created, err := e.participantRepository.Create(ctx, participant)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, app_error.Conflict("Participant with this email already exists.")
		}
		return nil, app_error.Internal(err)
	}
	metrics.ParticipantsCreatedCounter.Inc()
	return created, nil
}

func (e *ParticipantService) GetParticipantById(ctx context.Context, participantId int) (*repository.Participant, error) {
	participant, err := e.participantRepository.GetByID(ctx, participantId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Participant not found.")
		}
		return nil, app_error.Internal(err)
	}
	return participant, nil
}

func (e *ParticipantService) ListParticipants(ctx context.Context, filter repository.ParticipantFilter) (*Page[*repository.Participant], error) {
	pagination, err := NormalizePagination(filter.Pagination)
	if err != nil {
		return nil, err
	}
	filter.Pagination = pagination
	filter.Skills = utils.CleanList(filter.Skills)
	filter.Search = strings.TrimSpace(filter.Search)

	participants, total, err := e.participantRepository.Find(ctx, filter)
	if err != nil {
		return nil, app_error.Internal(err)
	}
	return &Page[*repository.Participant]{
		Items:  participants,
		Total:  total,
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}, nil
}

func (e *ParticipantService) UpdateParticipant(ctx context.Context, participantId int, update *ParticipantUpdate) (*repository.Participant, error) {
	participant, err := e.GetParticipantById(ctx, participantId)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		participant.Name = *update.Name
	}
	if update.Email != nil {
		participant.Email = *update.Email
	}
	if update.Skills != nil {
		participant.Skills = update.Skills
	}
	if update.Bio != nil {
		participant.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		participant.AvatarURL = *update.AvatarURL
	}
	if update.GithubURL != nil {
		participant.GithubURL = *update.GithubURL
	}
	if update.LinkedinURL != nil {
		participant.LinkedinURL = *update.LinkedinURL
	}
	if err := normalizeParticipant(participant); err != nil {
		return nil, err
	}

	updated, err := e.participantRepository.Update(ctx, participant)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, app_error.Conflict("Another participant already uses this email.")
		case errors.Is(err, repository.ErrNotFound):
			return nil, app_error.NotFound("Participant not found.")
		}
		return nil, app_error.Internal(err)
	}
	return updated, nil
}

func (e *ParticipantService) DeleteParticipant(ctx context.Context, participantId int) error {
	err := e.participantRepository.Delete(ctx, participantId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return app_error.NotFound("Participant not found.")
		}
		return app_error.Internal(err)
	}
	return nil
}

// RegisterForProject adds the participant to the project's team as a Member.
// The store's uniqueness constraint on (project, participant) decides duplicates,
// so concurrent identical registrations yield exactly one membership.
func (e *ParticipantService) RegisterForProject(ctx context.Context, participantId int, projectId int) (*repository.TeamMember, error) {
	member, err := e.registerForProject(ctx, participantId, projectId)
	outcome := "created"
	if err != nil {
		switch app_error.Status(err) {
		case 404:
			outcome = "not_found"
		case 409:
			outcome = "conflict"
		default:
			outcome = "error"
		}
	}
	metrics.RegistrationCounter.WithLabelValues(outcome).Inc()
	return member, err
}

func (e *ParticipantService) registerForProject(ctx context.Context, participantId int, projectId int) (*repository.TeamMember, error) {
	if _, err := e.GetParticipantById(ctx, participantId); err != nil {
		return nil, err
	}
	if _, err := e.projectRepository.GetByID(ctx, projectId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_error.NotFound("Project not found.")
		}
		return nil, app_error.Internal(err)
	}

	member, err := e.teamRepository.AddMember(ctx, &repository.TeamMember{
		ProjectID:     projectId,
		ParticipantID: participantId,
		Role:          repository.DefaultTeamRole,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, app_error.Conflict("Participant is already registered for this project.")
		case errors.Is(err, repository.ErrNotFound):
			// removed between the lookups and the insert
			return nil, app_error.NotFound("Participant or project not found.")
		}
		return nil, app_error.Internal(err)
	}
	return member, nil
}
