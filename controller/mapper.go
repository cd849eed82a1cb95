package controller

import (
	"hackaplan/repository"
	"hackaplan/utils"
	"time"
)

type HackathonResponse struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ParticipantResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Skills      []string  `json:"skills"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	GithubURL   string    `json:"github_url"`
	LinkedinURL string    `json:"linkedin_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamParticipantResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TeamEntryResponse struct {
	Participant *TeamParticipantResponse `json:"participant"`
	Role        string                   `json:"role"`
}

type TeamMemberResponse struct {
	ID            int                      `json:"id"`
	ProjectID     int                      `json:"project_id"`
	ParticipantID int                      `json:"participant_id"`
	Role          string                   `json:"role"`
	JoinedAt      time.Time                `json:"joined_at"`
	Participant   *TeamParticipantResponse `json:"participant"`
}

type ProjectResponse struct {
	ID          int                  `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	HackathonID int                  `json:"hackathon_id"`
	Score       *float64             `json:"score"`
	Status      string               `json:"status"`
	Tags        []string             `json:"tags"`
	Team        []*TeamEntryResponse `json:"team"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type ReviewProjectResponse struct {
	*ProjectResponse
	HackathonName string `json:"hackathon_name"`
}

type PodiumEntryResponse struct {
	*ProjectResponse
	Rank int `json:"rank"`
}

func toHackathonResponse(hackathon *repository.Hackathon) *HackathonResponse {
	return &HackathonResponse{
		ID:          hackathon.ID,
		Name:        hackathon.Name,
		Description: hackathon.Description,
		StartDate:   hackathon.StartDate,
		EndDate:     hackathon.EndDate,
		Status:      string(hackathon.Status),
		CreatedAt:   hackathon.CreatedAt,
	}
}

func toParticipantResponse(participant *repository.Participant) *ParticipantResponse {
	skills := []string(participant.Skills)
	if skills == nil {
		skills = []string{}
	}
	return &ParticipantResponse{
		ID:          participant.ID,
		Name:        participant.Name,
		Email:       participant.Email,
		Skills:      skills,
		Bio:         participant.Bio,
		AvatarURL:   participant.AvatarURL,
		GithubURL:   participant.GithubURL,
		LinkedinURL: participant.LinkedinURL,
		CreatedAt:   participant.CreatedAt,
		UpdatedAt:   participant.UpdatedAt,
	}
}

func toTeamParticipantResponse(participant *repository.Participant) *TeamParticipantResponse {
	if participant == nil {
		return nil
	}
	return &TeamParticipantResponse{
		ID:    participant.ID,
		Name:  participant.Name,
		Email: participant.Email,
	}
}

func toTeamEntryResponse(member *repository.TeamMember) *TeamEntryResponse {
	return &TeamEntryResponse{
		Participant: toTeamParticipantResponse(member.Participant),
		Role:        member.Role,
	}
}

func toTeamMemberResponse(member *repository.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:            member.ID,
		ProjectID:     member.ProjectID,
		ParticipantID: member.ParticipantID,
		Role:          member.Role,
		JoinedAt:      member.JoinedAt,
		Participant:   toTeamParticipantResponse(member.Participant),
	}
}

func toProjectResponse(project *repository.Project) *ProjectResponse {
	tags := []string(project.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		HackathonID: project.HackathonID,
		Score:       project.Score,
		Status:      string(project.Status),
		Tags:        tags,
		Team:        utils.Map(project.Team, toTeamEntryResponse),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toReviewProjectResponse(project *repository.Project) *ReviewProjectResponse {
	name := "N/A"
	if project.Hackathon != nil {
		name = project.Hackathon.Name
	}
	return &ReviewProjectResponse{
		ProjectResponse: toProjectResponse(project),
		HackathonName:   name,
	}
}

func toPodiumResponse(projects []*repository.Project) []*PodiumEntryResponse {
	podium := make([]*PodiumEntryResponse, len(projects))
	for i, project := range projects {
		podium[i] = &PodiumEntryResponse{
			ProjectResponse: toProjectResponse(project),
			Rank:            i + 1,
		}
	}
	return podium
}
