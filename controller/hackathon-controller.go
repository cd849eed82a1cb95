package controller

import (
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/service"
	"hackaplan/utils"

	"github.com/gin-gonic/gin"
)

type HackathonController struct {
	hackathonService *service.HackathonService
}

func NewHackathonController(store *repository.Store) *HackathonController {
	return &HackathonController{
		hackathonService: service.NewHackathonService(store),
	}
}

type HackathonCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   *Date  `json:"startDate" swaggertype:"string" example:"2025-06-01"`
	EndDate     *Date  `json:"endDate" swaggertype:"string" example:"2025-06-03"`
	Status      string `json:"status"`
}

func (h *HackathonCreate) toModel() *repository.Hackathon {
	return &repository.Hackathon{
		Name:        h.Name,
		Description: h.Description,
		StartDate:   h.StartDate.timePtr(),
		EndDate:     h.EndDate.timePtr(),
		Status:      repository.HackathonStatus(h.Status),
	}
}

func setupHackathonController(store *repository.Store) []RouteInfo {
	e := NewHackathonController(store)
	basePath := "/hackathons"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getHackathonsHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createHackathonHandler()},
		{Method: "GET", Path: "/:hackathon_id", HandlerFunc: e.getHackathonHandler()},
		{Method: "GET", Path: "/:hackathon_id/projects", HandlerFunc: e.getHackathonProjectsHandler(), Cached: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetHackathons
// @Description Fetches all hackathons ordered by start date
// @Tags hackathon
// @Produce json
// @Success 200 {array} HackathonResponse
// @Router /hackathons [get]
func (e *HackathonController) getHackathonsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hackathons, err := e.hackathonService.GetAllHackathons(c)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(hackathons, toHackathonResponse))
	}
}

// @id CreateHackathon
// @Description Creates a hackathon
// @Tags hackathon
// @Accept json
// @Produce json
// @Param hackathon body HackathonCreate true "Hackathon to create"
// @Success 201 {object} HackathonResponse
// @Router /hackathons [post]
func (e *HackathonController) createHackathonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var hackathon HackathonCreate
		if err := c.ShouldBindJSON(&hackathon); err != nil {
			app_error.WithHTTPStatus(c, err, 400)
			return
		}
		created, err := e.hackathonService.CreateHackathon(c, hackathon.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toHackathonResponse(created))
	}
}

// @id GetHackathon
// @Description Gets a hackathon by id
// @Tags hackathon
// @Produce json
// @Param hackathon_id path int true "Hackathon ID"
// @Success 200 {object} HackathonResponse
// @Router /hackathons/{hackathon_id} [get]
func (e *HackathonController) getHackathonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hackathonId, ok := intParam(c, "hackathon_id")
		if !ok {
			return
		}
		hackathon, err := e.hackathonService.GetHackathonById(c, hackathonId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toHackathonResponse(hackathon))
	}
}

// @id GetHackathonProjects
// @Description Lists every project of a hackathon with its team
// @Tags hackathon
// @Produce json
// @Param hackathon_id path int true "Hackathon ID"
// @Success 200 {array} ProjectResponse
// @Router /hackathons/{hackathon_id}/projects [get]
func (e *HackathonController) getHackathonProjectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hackathonId, ok := intParam(c, "hackathon_id")
		if !ok {
			return
		}
		projects, err := e.hackathonService.GetProjectsForHackathon(c, hackathonId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(projects, toProjectResponse))
	}
}
