package controller

import (
	"hackaplan/app_error"
	"hackaplan/service"
	"hackaplan/utils"

	"github.com/gin-gonic/gin"
)

type JuryController struct {
	juryService *service.JuryService
}

func NewJuryController(juryService *service.JuryService) *JuryController {
	return &JuryController{
		juryService: juryService,
	}
}

type ScoreUpdate struct {
	// A pointer so that a missing or null score fails binding instead of reading as 0.
	Score *float64 `json:"score" binding:"required"`
}

type PodiumResponse struct {
	Message string                 `json:"message"`
	Podium  []*PodiumEntryResponse `json:"podium"`
}

func setupJuryController(juryService *service.JuryService) []RouteInfo {
	e := NewJuryController(juryService)
	basePath := "/jury"
	routes := []RouteInfo{
		{Method: "PATCH", Path: "/projects/:project_id/score", HandlerFunc: assignScoreHandler(juryService)},
		{Method: "GET", Path: "/projects-for-review", HandlerFunc: e.getProjectsForReviewHandler()},
		{Method: "POST", Path: "/hackathons/:hackathon_id/validate-podiums", HandlerFunc: e.validatePodiumsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id AssignScore
// @Description Sets the jury score (0 to 100) of a project and broadcasts it to live score listeners
// @Tags jury
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param score body ScoreUpdate true "Score"
// @Success 200 {object} ProjectResponse
// @Router /jury/projects/{project_id}/score [patch]
// @Router /projects/{project_id}/score [patch]
func assignScoreHandler(juryService *service.JuryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		var update ScoreUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			app_error.Message(c, 400, "Score must be a number between 0 and 100.")
			return
		}
		project, err := juryService.AssignScore(c, projectId, *update.Score)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id GetProjectsForReview
// @Description Lists projects with hackathon name and team for the jury
// @Tags jury
// @Produce json
// @Param hackathon_id query int false "Hackathon ID"
// @Success 200 {array} ReviewProjectResponse
// @Router /jury/projects-for-review [get]
func (e *JuryController) getProjectsForReviewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var hackathonId *int
		if c.Query("hackathon_id") != "" {
			id, ok := intQuery(c, "hackathon_id")
			if !ok {
				return
			}
			hackathonId = &id
		}
		projects, err := e.juryService.ProjectsForReview(c, hackathonId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(projects, toReviewProjectResponse))
	}
}

// @id ValidatePodiums
// @Description Determines the top three projects of a hackathon. Unscored projects rank last and ties go to the lower project id.
// @Tags jury
// @Produce json
// @Param hackathon_id path int true "Hackathon ID"
// @Success 200 {object} PodiumResponse
// @Router /jury/hackathons/{hackathon_id}/validate-podiums [post]
func (e *JuryController) validatePodiumsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hackathonId, ok := intParam(c, "hackathon_id")
		if !ok {
			return
		}
		podium, err := e.juryService.ComputePodium(c, hackathonId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, PodiumResponse{
			Message: "Podiums determined successfully",
			Podium:  toPodiumResponse(podium),
		})
	}
}
