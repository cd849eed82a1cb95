package controller

import (
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/service"
	"hackaplan/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

type ParticipantController struct {
	participantService *service.ParticipantService
}

func NewParticipantController(store *repository.Store) *ParticipantController {
	return &ParticipantController{
		participantService: service.NewParticipantService(store),
	}
}

type ParticipantCreate struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Skills      []string `json:"skills"`
	Bio         string   `json:"bio"`
	AvatarURL   string   `json:"avatarUrl"`
	GithubURL   string   `json:"githubUrl"`
	LinkedinURL string   `json:"linkedinUrl"`
}

func (p *ParticipantCreate) toModel() *repository.Participant {
	return &repository.Participant{
		Name:        p.Name,
		Email:       p.Email,
		Skills:      p.Skills,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		GithubURL:   p.GithubURL,
		LinkedinURL: p.LinkedinURL,
	}
}

type ParticipantUpdate struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Skills      []string `json:"skills"`
	Bio         *string  `json:"bio"`
	AvatarURL   *string  `json:"avatarUrl"`
	GithubURL   *string  `json:"githubUrl"`
	LinkedinURL *string  `json:"linkedinUrl"`
}

func (p *ParticipantUpdate) toServiceUpdate() *service.ParticipantUpdate {
	return &service.ParticipantUpdate{
		Name:        p.Name,
		Email:       p.Email,
		Skills:      p.Skills,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		GithubURL:   p.GithubURL,
		LinkedinURL: p.LinkedinURL,
	}
}

type ProjectRegistration struct {
	ParticipantID int `json:"participantId" binding:"required"`
	ProjectID     int `json:"projectId" binding:"required"`
}

type ParticipantListResponse struct {
	Participants []*ParticipantResponse `json:"participants"`
	Total        int64                  `json:"total"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
}

type RegistrationResponse struct {
	Message    string              `json:"message"`
	TeamMember *TeamMemberResponse `json:"team_member"`
}

func setupParticipantController(store *repository.Store) []RouteInfo {
	e := NewParticipantController(store)
	basePath := "/participants"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getParticipantsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createParticipantHandler()},
		{Method: "POST", Path: "/register-project", HandlerFunc: e.registerForProjectHandler()},
		{Method: "GET", Path: "/:participant_id", HandlerFunc: e.getParticipantHandler()},
		{Method: "PATCH", Path: "/:participant_id", HandlerFunc: e.updateParticipantHandler()},
		{Method: "DELETE", Path: "/:participant_id", HandlerFunc: e.deleteParticipantHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetParticipants
// @Description Lists participants. A participant matches the skills filter when it has every listed skill.
// @Tags participant
// @Produce json
// @Param skills query string false "Comma separated skills"
// @Param search query string false "Substring of name or email"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} ParticipantListResponse
// @Router /participants [get]
func (e *ParticipantController) getParticipantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pagination, ok := paginationQuery(c)
		if !ok {
			return
		}
		filter := repository.ParticipantFilter{
			Pagination: pagination,
			Search:     c.Query("search"),
		}
		if skills := c.Query("skills"); skills != "" {
			filter.Skills = strings.Split(skills, ",")
		}
		page, err := e.participantService.ListParticipants(c, filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, ParticipantListResponse{
			Participants: utils.Map(page.Items, toParticipantResponse),
			Total:        page.Total,
			Limit:        page.Limit,
			Offset:       page.Offset,
		})
	}
}

// @id CreateParticipant
// @Description Creates a participant. Emails are unique.
// @Tags participant
// @Accept json
// @Produce json
// @Param participant body ParticipantCreate true "Participant to create"
// @Success 201 {object} ParticipantResponse
// @Router /participants [post]
func (e *ParticipantController) createParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var participant ParticipantCreate
		if err := c.ShouldBindJSON(&participant); err != nil {
			app_error.WithHTTPStatus(c, err, 400)
			return
		}
		created, err := e.participantService.CreateParticipant(c, participant.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toParticipantResponse(created))
	}
}

// @id GetParticipant
// @Description Gets a participant by id
// @Tags participant
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Success 200 {object} ParticipantResponse
// @Router /participants/{participant_id} [get]
func (e *ParticipantController) getParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, ok := intParam(c, "participant_id")
		if !ok {
			return
		}
		participant, err := e.participantService.GetParticipantById(c, participantId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toParticipantResponse(participant))
	}
}

// @id UpdateParticipant
// @Description Updates the given fields of a participant
// @Tags participant
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Param participant body ParticipantUpdate true "Fields to update"
// @Success 200 {object} ParticipantResponse
// @Router /participants/{participant_id} [patch]
func (e *ParticipantController) updateParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, ok := intParam(c, "participant_id")
		if !ok {
			return
		}
		var update ParticipantUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			app_error.WithHTTPStatus(c, err, 400)
			return
		}
		participant, err := e.participantService.UpdateParticipant(c, participantId, update.toServiceUpdate())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toParticipantResponse(participant))
	}
}

// @id DeleteParticipant
// @Description Deletes a participant and its team memberships
// @Tags participant
// @Param participant_id path int true "Participant ID"
// @Success 204
// @Router /participants/{participant_id} [delete]
func (e *ParticipantController) deleteParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, ok := intParam(c, "participant_id")
		if !ok {
			return
		}
		if err := e.participantService.DeleteParticipant(c, participantId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @id RegisterForProject
// @Description Adds a participant to a project's team with the Member role
// @Tags participant
// @Accept json
// @Produce json
// @Param registration body ProjectRegistration true "Participant and project"
// @Success 200 {object} RegistrationResponse
// @Router /participants/register-project [post]
func (e *ParticipantController) registerForProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var registration ProjectRegistration
		if err := c.ShouldBindJSON(&registration); err != nil {
			app_error.WithHTTPStatus(c, err, 400)
			return
		}
		member, err := e.participantService.RegisterForProject(c, registration.ParticipantID, registration.ProjectID)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, RegistrationResponse{
			Message:    "Successfully registered for project and joined team!",
			TeamMember: toTeamMemberResponse(member),
		})
	}
}
