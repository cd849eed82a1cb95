package service

import (
	"context"
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/repository/memory"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHackathonValidation(t *testing.T) {
	ctx := context.Background()
	hackathons := NewHackathonService(memory.NewStore())
	start := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := hackathons.CreateHackathon(ctx, &repository.Hackathon{Name: " "})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))
	_, err = hackathons.CreateHackathon(ctx, &repository.Hackathon{Name: "H", Status: "paused"})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))
	_, err = hackathons.CreateHackathon(ctx, &repository.Hackathon{Name: "H", StartDate: &start, EndDate: &end})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))

	created, err := hackathons.CreateHackathon(ctx, &repository.Hackathon{Name: "H", StartDate: &start})
	require.NoError(t, err)
	assert.Equal(t, repository.HackathonDraft, created.Status)

	fetched, err := hackathons.GetHackathonById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "H", fetched.Name)
	_, err = hackathons.GetHackathonById(ctx, 9999)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	store, hackathon, _ := setUp(t)
	projects := NewProjectService(store)

	_, err := projects.CreateProject(ctx, &repository.Project{Title: "Lost", HackathonID: 9999})
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
	_, err = projects.CreateProject(ctx, &repository.Project{HackathonID: hackathon.ID})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))

	preset := 99.0
	created, err := projects.CreateProject(ctx, &repository.Project{
		Title:       "Drone",
		HackathonID: hackathon.ID,
		Score:       &preset,
		Tags:        []string{"hardware", "Hardware", " "},
	})
	require.NoError(t, err)
	assert.Nil(t, created.Score)
	assert.Equal(t, repository.ProjectDraft, created.Status)
	assert.Equal(t, []string{"hardware"}, []string(created.Tags))
}

func TestUpdateAndDeleteProject(t *testing.T) {
	ctx := context.Background()
	store, _, project := setUp(t)
	projects := NewProjectService(store)

	status := repository.ProjectSubmitted
	title := "Robot v2"
	updated, err := projects.UpdateProject(ctx, project.ID, &ProjectUpdate{Title: &title, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Robot v2", updated.Title)
	assert.Equal(t, repository.ProjectSubmitted, updated.Status)

	invalid := repository.ProjectStatus("shipped")
	_, err = projects.UpdateProject(ctx, project.ID, &ProjectUpdate{Status: &invalid})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))

	require.NoError(t, projects.DeleteProject(ctx, project.ID))
	_, err = projects.GetProjectById(ctx, project.ID)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
	assert.Equal(t, http.StatusNotFound, app_error.Status(projects.DeleteProject(ctx, project.ID)))
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()
	store, hackathon, _ := setUp(t)
	projects := NewProjectService(store)
	_, err := projects.CreateProject(ctx, &repository.Project{Title: "Chatbot", Description: "LLM helper", HackathonID: hackathon.ID, Tags: []string{"AI"}})
	require.NoError(t, err)
	_, err = projects.CreateProject(ctx, &repository.Project{Title: "Maps", HackathonID: hackathon.ID, Status: repository.ProjectInProgress})
	require.NoError(t, err)

	page, err := projects.ListProjects(ctx, repository.ProjectFilter{Tag: "ai"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Chatbot", page.Items[0].Title)

	page, err = projects.ListProjects(ctx, repository.ProjectFilter{Search: "llm"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = projects.ListProjects(ctx, repository.ProjectFilter{HackathonID: &hackathon.ID, Pagination: repository.Pagination{Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "Chatbot", page.Items[0].Title)

	page, err = projects.ListProjects(ctx, repository.ProjectFilter{Status: repository.ProjectInProgress})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	_, err = projects.ListProjects(ctx, repository.ProjectFilter{Status: "unknown"})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))

	forHackathon, err := NewHackathonService(store).GetProjectsForHackathon(ctx, hackathon.ID)
	require.NoError(t, err)
	assert.Len(t, forHackathon, 3)
}
