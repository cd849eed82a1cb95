package controller

import (
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/service"
	"hackaplan/utils"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService   *service.ProjectService
	hackathonService *service.HackathonService
	juryService      *service.JuryService
}

func NewProjectController(store *repository.Store, juryService *service.JuryService) *ProjectController {
	return &ProjectController{
		projectService:   service.NewProjectService(store),
		hackathonService: service.NewHackathonService(store),
		juryService:      juryService,
	}
}

type ProjectCreate struct {
	Title string `json:"title"`
	// Name is accepted as an alias of Title.
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HackathonID int      `json:"hackathonId" binding:"required"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
}

func (p *ProjectCreate) toModel() *repository.Project {
	title := p.Title
	if title == "" {
		title = p.Name
	}
	return &repository.Project{
		Title:       title,
		Description: p.Description,
		HackathonID: p.HackathonID,
		Status:      repository.ProjectStatus(p.Status),
		Tags:        p.Tags,
	}
}

type ProjectUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Tags        []string `json:"tags"`
}

func (p *ProjectUpdate) toServiceUpdate() *service.ProjectUpdate {
	update := &service.ProjectUpdate{
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
	}
	if p.Status != nil {
		status := repository.ProjectStatus(*p.Status)
		update.Status = &status
	}
	return update
}

type ProjectListResponse struct {
	Projects []*ProjectResponse `json:"projects"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

func setupProjectController(store *repository.Store, juryService *service.JuryService) []RouteInfo {
	e := NewProjectController(store, juryService)
	basePath := "/projects"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getProjectsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createProjectHandler()},
		{Method: "GET", Path: "/hackathon/:hackathon_id", HandlerFunc: e.getProjectsForHackathonHandler()},
		{Method: "GET", Path: "/:project_id", HandlerFunc: e.getProjectHandler()},
		{Method: "PATCH", Path: "/:project_id", HandlerFunc: e.updateProjectHandler()},
		{Method: "DELETE", Path: "/:project_id", HandlerFunc: e.deleteProjectHandler()},
		{Method: "PATCH", Path: "/:project_id/score", HandlerFunc: assignScoreHandler(juryService)},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetProjects
// @Description Lists projects with their teams
// @Tags project
// @Produce json
// @Param hackathon_id query int false "Hackathon ID"
// @Param status query string false "Project status"
// @Param tag query string false "Tag"
// @Param search query string false "Substring of title or description"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} ProjectListResponse
// @Router /projects [get]
func (e *ProjectController) getProjectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pagination, ok := paginationQuery(c)
		if !ok {
			return
		}
		filter := repository.ProjectFilter{
			Pagination: pagination,
			Status:     repository.ProjectStatus(c.Query("status")),
			Tag:        c.Query("tag"),
			Search:     c.Query("search"),
		}
		if c.Query("hackathon_id") != "" {
			hackathonId, ok := intQuery(c, "hackathon_id")
			if !ok {
				return
			}
			filter.HackathonID = &hackathonId
		}
		page, err := e.projectService.ListProjects(c, filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, ProjectListResponse{
			Projects: utils.Map(page.Items, toProjectResponse),
			Total:    page.Total,
			Limit:    page.Limit,
			Offset:   page.Offset,
		})
	}
}

// @id CreateProject
// @Description Creates an unscored project in a hackathon
// @Tags project
// @Accept json
// @Produce json
// @Param project body ProjectCreate true "Project to create"
// @Success 201 {object} ProjectResponse
// @Router /projects [post]
func (e *ProjectController) createProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var project ProjectCreate
		if err := c.ShouldBindJSON(&project); err != nil {
			app_error.WithHTTPStatus(c, err, 400)
			return
		}
		created, err := e.projectService.CreateProject(c, project.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toProjectResponse(created))
	}
}

// @id GetProjectsForHackathon
// @Description Lists every project of a hackathon with its team
// @Tags project
// @Produce json
// @Param hackathon_id path int true "Hackathon ID"
// @Success 200 {array} ProjectResponse
// @Router /projects/hackathon/{hackathon_id} [get]
func (e *ProjectController) getProjectsForHackathonHandler() gin.HandlerFunc {
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

// @id GetProject
// @Description Gets a project with its team
// @Tags project
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Router /projects/{project_id} [get]
func (e *ProjectController) getProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		project, err := e.projectService.GetProjectById(c, projectId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id UpdateProject
// @Description Updates the given fields of a project. The score is set through the score endpoint.
// @Tags project
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param project body ProjectUpdate true "Fields to update"
// @Success 200 {object} ProjectResponse
// @Router /projects/{project_id} [patch]
func (e *ProjectController) updateProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		var update ProjectUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			app_error.WithHTTPStatus(c, err, 400)
			return
		}
		project, err := e.projectService.UpdateProject(c, projectId, update.toServiceUpdate())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id DeleteProject
// @Description Deletes a project and its team memberships
// @Tags project
// @Param project_id path int true "Project ID"
// @Success 204
// @Router /projects/{project_id} [delete]
func (e *ProjectController) deleteProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		if err := e.projectService.DeleteProject(c, projectId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}
