package service

import (
	"context"
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/repository/memory"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUp(t *testing.T) (*repository.Store, *repository.Hackathon, *repository.Project) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	hackathon, err := NewHackathonService(store).CreateHackathon(ctx, &repository.Hackathon{Name: "Spring Jam"})
	require.NoError(t, err)
	project, err := NewProjectService(store).CreateProject(ctx, &repository.Project{Title: "Robot", HackathonID: hackathon.ID})
	require.NoError(t, err)
	return store, hackathon, project
}

func TestCreateParticipantThenGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	participants := NewParticipantService(store)

	created, err := participants.CreateParticipant(ctx, &repository.Participant{
		Name:      "  Ada Lovelace ",
		Email:     " Ada@Example.com",
		Skills:    []string{"Go", " react", "", "go"},
		GithubURL: "https://github.com/ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, []string{"Go", "react"}, []string(created.Skills))

	fetched, err := participants.GetParticipantById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateParticipantValidation(t *testing.T) {
	ctx := context.Background()
	participants := NewParticipantService(memory.NewStore())

	cases := map[string]*repository.Participant{
		"missing name":  {Email: "a@example.com"},
		"missing email": {Name: "Ada"},
		"invalid email": {Name: "Ada", Email: "not-an-email"},
		"invalid url":   {Name: "Ada", Email: "a@example.com", AvatarURL: "nope"},
	}
	for name, participant := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := participants.CreateParticipant(ctx, participant)
			assert.Equal(t, http.StatusBadRequest, app_error.Status(err))
		})
	}
}

func TestDuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	participants := NewParticipantService(memory.NewStore())

	_, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada Again", Email: "ADA@example.com"})
	assert.Equal(t, http.StatusConflict, app_error.Status(err))
}

func TestConcurrentDuplicateEmailCreatesOneParticipant(t *testing.T) {
	ctx := context.Background()
	participants := NewParticipantService(memory.NewStore())

	var created, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada", Email: "ada@example.com"})
			if err == nil {
				created.Add(1)
			} else if app_error.Status(err) == http.StatusConflict {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(9), conflicts.Load())
}

func TestUpdateParticipant(t *testing.T) {
	ctx := context.Background()
	participants := NewParticipantService(memory.NewStore())
	ada, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	grace, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	bio := "Analyst"
	updated, err := participants.UpdateParticipant(ctx, ada.ID, &ParticipantUpdate{Bio: &bio, Skills: []string{"math"}})
	require.NoError(t, err)
	assert.Equal(t, "Analyst", updated.Bio)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, []string{"math"}, []string(updated.Skills))

	taken := "Grace@example.com"
	_, err = participants.UpdateParticipant(ctx, ada.ID, &ParticipantUpdate{Email: &taken})
	assert.Equal(t, http.StatusConflict, app_error.Status(err))

	own := grace.Email
	_, err = participants.UpdateParticipant(ctx, grace.ID, &ParticipantUpdate{Email: &own})
	assert.NoError(t, err)

	_, err = participants.UpdateParticipant(ctx, 9999, &ParticipantUpdate{Bio: &bio})
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}

func TestDeleteParticipant(t *testing.T) {
	ctx := context.Background()
	participants := NewParticipantService(memory.NewStore())
	ada, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, participants.DeleteParticipant(ctx, ada.ID))
	_, err = participants.GetParticipantById(ctx, ada.ID)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
	assert.Equal(t, http.StatusNotFound, app_error.Status(participants.DeleteParticipant(ctx, ada.ID)))
}

func TestListParticipantsTotalIsFilteredCount(t *testing.T) {
	ctx := context.Background()
	participants := NewParticipantService(memory.NewStore())
	for _, p := range []*repository.Participant{
		{Name: "Ada", Email: "ada@example.com", Skills: []string{"React", "Go"}},
		{Name: "Bob", Email: "bob@example.com", Skills: []string{"react"}},
		{Name: "Cy", Email: "cy@example.com", Skills: []string{"python"}},
		{Name: "Dee", Email: "dee@example.com", Skills: []string{"REACT"}},
	} {
		_, err := participants.CreateParticipant(ctx, p)
		require.NoError(t, err)
	}

	page, err := participants.ListParticipants(ctx, repository.ParticipantFilter{
		Skills:     []string{"react"},
		Pagination: repository.Pagination{Limit: 1, Offset: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Limit)
	assert.Equal(t, 0, page.Offset)

	page, err = participants.ListParticipants(ctx, repository.ParticipantFilter{
		Skills: []string{"react", "go"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, DefaultPageLimit, page.Limit)

	page, err = participants.ListParticipants(ctx, repository.ParticipantFilter{
		Pagination: repository.Pagination{Limit: 1000, Offset: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, MaxPageLimit, page.Limit)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Items, 1)

	_, err = participants.ListParticipants(ctx, repository.ParticipantFilter{Pagination: repository.Pagination{Offset: -1}})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))
}

func TestRegisterForProject(t *testing.T) {
	ctx := context.Background()
	store, _, project := setUp(t)
	participants := NewParticipantService(store)
	ada, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = participants.RegisterForProject(ctx, 9999, project.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
	assert.Equal(t, "Participant not found.", err.Error())

	_, err = participants.RegisterForProject(ctx, ada.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
	assert.Equal(t, "Project not found.", err.Error())

	member, err := participants.RegisterForProject(ctx, ada.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Member", member.Role)
	assert.Equal(t, project.ID, member.ProjectID)
	assert.Equal(t, ada.ID, member.Participant.ID)

	_, err = participants.RegisterForProject(ctx, ada.ID, project.ID)
	assert.Equal(t, http.StatusConflict, app_error.Status(err))

	team, err := store.Teams.GetMembersForProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, team, 1)
}

func TestConcurrentRegistrationCreatesOneMembership(t *testing.T) {
	ctx := context.Background()
	store, _, project := setUp(t)
	participants := NewParticipantService(store)
	ada, err := participants.CreateParticipant(ctx, &repository.Participant{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	var successes, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := participants.RegisterForProject(ctx, ada.ID, project.ID)
			if err == nil {
				successes.Add(1)
			} else if app_error.Status(err) == http.StatusConflict {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(24), conflicts.Load())
	team, err := store.Teams.GetMembersForProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, team, 1)
}
