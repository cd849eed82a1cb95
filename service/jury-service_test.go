package service

import (
	"context"
	"errors"
	"hackaplan/app_error"
	"hackaplan/repository"
	"math"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ScoreEvent
	err    error
}

func (p *recordingPublisher) Name() string {
	return "recording"
}

func (p *recordingPublisher) PublishScore(_ context.Context, event ScoreEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func TestAssignScoreValidatesRange(t *testing.T) {
	ctx := context.Background()
	store, _, project := setUp(t)
	jury := NewJuryService(store)

	for _, score := range []float64{-1, 101, -0.001, 100.0001, math.NaN(), math.Inf(1)} {
		_, err := jury.AssignScore(ctx, project.ID, score)
		assert.Equal(t, http.StatusBadRequest, app_error.Status(err), "score %v", score)
	}
	for _, score := range []float64{0, 100, 85.5} {
		updated, err := jury.AssignScore(ctx, project.ID, score)
		require.NoError(t, err, "score %v", score)
		require.NotNil(t, updated.Score)
		assert.Equal(t, score, *updated.Score)
	}
}

func TestAssignScoreIsIdempotentOverwrite(t *testing.T) {
	ctx := context.Background()
	store, _, project := setUp(t)
	jury := NewJuryService(store)

	first, err := jury.AssignScore(ctx, project.ID, 42)
	require.NoError(t, err)
	second, err := jury.AssignScore(ctx, project.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, *first.Score, *second.Score)

	third, err := jury.AssignScore(ctx, project.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, *third.Score)
}

func TestAssignScoreUnknownProject(t *testing.T) {
	store, _, _ := setUp(t)
	_, err := NewJuryService(store).AssignScore(context.Background(), 9999, 50)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}

func TestAssignScorePublishesEvents(t *testing.T) {
	ctx := context.Background()
	store, hackathon, project := setUp(t)
	ok := &recordingPublisher{}
	failing := &recordingPublisher{err: errors.New("broker down")}
	jury := NewJuryService(store, failing, ok)

	_, err := jury.AssignScore(ctx, project.ID, 90)
	require.NoError(t, err)

	require.Len(t, ok.events, 1)
	assert.Equal(t, project.ID, ok.events[0].ProjectID)
	assert.Equal(t, hackathon.ID, ok.events[0].HackathonID)
	assert.Equal(t, 90.0, ok.events[0].Score)
	assert.Len(t, failing.events, 1)

	_, err = jury.AssignScore(ctx, project.ID, 120)
	require.Error(t, err)
	assert.Len(t, ok.events, 1)
}

func TestComputePodium(t *testing.T) {
	ctx := context.Background()
	store, hackathon, first := setUp(t)
	projects := NewProjectService(store)
	jury := NewJuryService(store)

	podium, err := jury.ComputePodium(ctx, hackathon.ID)
	require.NoError(t, err)
	require.Len(t, podium, 1)
	assert.Equal(t, first.ID, podium[0].ID)

	scores := []float64{70, 95, 70, 10}
	ids := []int{first.ID}
	_, err = jury.AssignScore(ctx, first.ID, 50)
	require.NoError(t, err)
	for i, score := range scores {
		p, err := projects.CreateProject(ctx, &repository.Project{Title: string(rune('A' + i)), HackathonID: hackathon.ID})
		require.NoError(t, err)
		_, err = jury.AssignScore(ctx, p.ID, score)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	podium, err = jury.ComputePodium(ctx, hackathon.ID)
	require.NoError(t, err)
	require.Len(t, podium, PodiumSize)
	assert.Equal(t, ids[2], podium[0].ID)
	// the two 70s keep id order
	assert.Equal(t, ids[1], podium[1].ID)
	assert.Equal(t, ids[3], podium[2].ID)
	for i := 1; i < len(podium); i++ {
		assert.GreaterOrEqual(t, *podium[i-1].Score, *podium[i].Score)
	}
}

func TestComputePodiumWithoutProjects(t *testing.T) {
	ctx := context.Background()
	store, _, _ := setUp(t)
	empty, err := NewHackathonService(store).CreateHackathon(ctx, &repository.Hackathon{Name: "Empty"})
	require.NoError(t, err)

	_, err = NewJuryService(store).ComputePodium(ctx, empty.ID)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))

	_, err = NewJuryService(store).ComputePodium(ctx, 9999)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}

func TestProjectsForReview(t *testing.T) {
	ctx := context.Background()
	store, hackathon, project := setUp(t)
	other, err := NewHackathonService(store).CreateHackathon(ctx, &repository.Hackathon{Name: "Autumn Jam"})
	require.NoError(t, err)
	_, err = NewProjectService(store).CreateProject(ctx, &repository.Project{Title: "Other", HackathonID: other.ID})
	require.NoError(t, err)
	jury := NewJuryService(store)

	all, err := jury.ProjectsForReview(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := jury.ProjectsForReview(ctx, &hackathon.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, project.ID, filtered[0].ID)
	assert.Equal(t, "Spring Jam", filtered[0].Hackathon.Name)
}
