package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hackaplan/repository/memory"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUpRouter(t *testing.T) (*gin.Engine, *ScoreHub) {
	t.Helper()
	r, hub, _ := setUpRouterWithCache(t)
	return r, hub
}

func setUpRouterWithCache(t *testing.T) (*gin.Engine, *ScoreHub, persistence.CacheStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	hub := NewScoreHub()
	cacheStore := persistence.NewInMemoryStore(time.Minute)
	SetRoutes(r, memory.NewStore(), cacheStore, hub)
	return r, hub, cacheStore
}

// doRequest sends body as-is when it is a string and JSON-encodes it otherwise.
func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// assertErrorBody checks both keys of the error body.
func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, message string) {
	t.Helper()
	body := decode[map[string]string](t, w)
	assert.Equal(t, message, body["error"])
	assert.Equal(t, message, body["message"])
}

func createHackathon(t *testing.T, r http.Handler, name string) *HackathonResponse {
	w := doRequest(t, r, "POST", "/api/hackathons", gin.H{"name": name})
	require.Equal(t, 201, w.Code, w.Body.String())
	return decode[*HackathonResponse](t, w)
}

func createProject(t *testing.T, r http.Handler, title string, hackathonId int) *ProjectResponse {
	w := doRequest(t, r, "POST", "/api/projects", gin.H{"title": title, "hackathonId": hackathonId})
	require.Equal(t, 201, w.Code, w.Body.String())
	return decode[*ProjectResponse](t, w)
}

func createParticipant(t *testing.T, r http.Handler, name, email string, skills ...string) *ParticipantResponse {
	w := doRequest(t, r, "POST", "/api/participants", gin.H{"name": name, "email": email, "skills": skills})
	require.Equal(t, 201, w.Code, w.Body.String())
	return decode[*ParticipantResponse](t, w)
}

func TestRegisterScoreAndPodium(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "H")
	project := createProject(t, r, "P", hackathon.ID)
	participant := createParticipant(t, r, "A", "a@example.com")
	assert.Nil(t, project.Score)

	w := doRequest(t, r, "POST", "/api/participants/register-project", gin.H{"participantId": participant.ID, "projectId": project.ID})
	require.Equal(t, 200, w.Code, w.Body.String())
	registration := decode[RegistrationResponse](t, w)
	assert.Equal(t, "Member", registration.TeamMember.Role)
	assert.Equal(t, participant.ID, registration.TeamMember.Participant.ID)

	w = doRequest(t, r, "PATCH", fmt.Sprintf("/api/jury/projects/%d/score", project.ID), gin.H{"score": 90})
	require.Equal(t, 200, w.Code, w.Body.String())
	scored := decode[*ProjectResponse](t, w)
	require.NotNil(t, scored.Score)
	assert.Equal(t, 90.0, *scored.Score)

	w = doRequest(t, r, "POST", fmt.Sprintf("/api/jury/hackathons/%d/validate-podiums", hackathon.ID), nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	podium := decode[PodiumResponse](t, w)
	assert.Equal(t, "Podiums determined successfully", podium.Message)
	require.Len(t, podium.Podium, 1)
	assert.Equal(t, 1, podium.Podium[0].Rank)
	assert.Equal(t, project.ID, podium.Podium[0].ID)
	assert.Equal(t, 90.0, *podium.Podium[0].Score)
	require.Len(t, podium.Podium[0].Team, 1)
	assert.Equal(t, "a@example.com", podium.Podium[0].Team[0].Participant.Email)
	assert.Equal(t, "Member", podium.Podium[0].Team[0].Role)
}

func TestPodiumWithoutProjects(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "Empty")

	w := doRequest(t, r, "POST", fmt.Sprintf("/api/jury/hackathons/%d/validate-podiums", hackathon.ID), nil)

	assert.Equal(t, 404, w.Code)
	assertErrorBody(t, w, "No projects found for this hackathon to determine podiums.")
}

func TestAssignScoreRejectsInvalidValues(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "H")
	project := createProject(t, r, "P", hackathon.ID)
	path := fmt.Sprintf("/api/projects/%d/score", project.ID)

	for _, body := range []string{`{"score": -1}`, `{"score": 101}`, `{"score": "85"}`, `{"score": null}`, `{}`} {
		w := doRequest(t, r, "PATCH", path, body)
		assert.Equal(t, 400, w.Code, body)
		assert.Contains(t, w.Body.String(), "Score must be a number between 0 and 100.", body)
	}

	w := doRequest(t, r, "GET", fmt.Sprintf("/api/projects/%d", project.ID), nil)
	require.Equal(t, 200, w.Code)
	assert.Nil(t, decode[*ProjectResponse](t, w).Score)

	w = doRequest(t, r, "PATCH", "/api/projects/9999/score", gin.H{"score": 50})
	assert.Equal(t, 404, w.Code)
}

func TestAssignScoreBoundaries(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "H")
	project := createProject(t, r, "P", hackathon.ID)

	for _, score := range []float64{0, 100} {
		w := doRequest(t, r, "PATCH", fmt.Sprintf("/api/projects/%d/score", project.ID), gin.H{"score": score})
		require.Equal(t, 200, w.Code, w.Body.String())
		assert.Equal(t, score, *decode[*ProjectResponse](t, w).Score)
	}
}

func TestCreateParticipantRejectsDuplicateEmail(t *testing.T) {
	r, _ := setUpRouter(t)
	createParticipant(t, r, "Ada", "ada@example.com")

	w := doRequest(t, r, "POST", "/api/participants", gin.H{"name": "Ada II", "email": " ADA@example.com "})

	assert.Equal(t, 409, w.Code)
	assertErrorBody(t, w, "Participant with this email already exists.")
}

func TestCreateParticipantValidation(t *testing.T) {
	r, _ := setUpRouter(t)

	assert.Equal(t, 400, doRequest(t, r, "POST", "/api/participants", gin.H{"name": "No Mail"}).Code)
	assert.Equal(t, 400, doRequest(t, r, "POST", "/api/participants", gin.H{"name": "Bad", "email": "not-an-email"}).Code)
	assert.Equal(t, 400, doRequest(t, r, "POST", "/api/participants", `{"name": `).Code)
}

func TestRegisterForProjectErrors(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "H")
	project := createProject(t, r, "P", hackathon.ID)
	participant := createParticipant(t, r, "A", "a@example.com")
	body := gin.H{"participantId": participant.ID, "projectId": project.ID}

	require.Equal(t, 200, doRequest(t, r, "POST", "/api/participants/register-project", body).Code)

	w := doRequest(t, r, "POST", "/api/participants/register-project", body)
	assert.Equal(t, 409, w.Code)
	assertErrorBody(t, w, "Participant is already registered for this project.")

	w = doRequest(t, r, "POST", "/api/participants/register-project", gin.H{"participantId": 9999, "projectId": project.ID})
	assert.Equal(t, 404, w.Code)
	assertErrorBody(t, w, "Participant not found.")

	w = doRequest(t, r, "POST", "/api/participants/register-project", gin.H{"participantId": participant.ID, "projectId": 9999})
	assert.Equal(t, 404, w.Code)
	assertErrorBody(t, w, "Project not found.")

	w = doRequest(t, r, "POST", "/api/participants/register-project", gin.H{"participantId": participant.ID})
	assert.Equal(t, 400, w.Code)
}

func TestListParticipantsBySkills(t *testing.T) {
	r, _ := setUpRouter(t)
	createParticipant(t, r, "Ada", "ada@example.com", "React", "Go")
	createParticipant(t, r, "Bob", "bob@example.com", "react")
	createParticipant(t, r, "Cy", "cy@example.com", "Rust")

	w := doRequest(t, r, "GET", "/api/participants?skills=react&limit=1&offset=0", nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	list := decode[ParticipantListResponse](t, w)
	assert.EqualValues(t, 2, list.Total)
	assert.Equal(t, 1, list.Limit)
	assert.Equal(t, 0, list.Offset)
	require.Len(t, list.Participants, 1)
	assert.Equal(t, "Ada", list.Participants[0].Name)

	w = doRequest(t, r, "GET", "/api/participants?skills=react,go", nil)
	list = decode[ParticipantListResponse](t, w)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, 20, list.Limit)

	w = doRequest(t, r, "GET", "/api/participants?limit=500", nil)
	assert.Equal(t, 100, decode[ParticipantListResponse](t, w).Limit)

	assert.Equal(t, 400, doRequest(t, r, "GET", "/api/participants?limit=-1", nil).Code)
	assert.Equal(t, 400, doRequest(t, r, "GET", "/api/participants?offset=abc", nil).Code)
}

func TestParticipantUpdateAndDelete(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "H")
	project := createProject(t, r, "P", hackathon.ID)
	ada := createParticipant(t, r, "Ada", "ada@example.com")
	createParticipant(t, r, "Bob", "bob@example.com")
	require.Equal(t, 200, doRequest(t, r, "POST", "/api/participants/register-project", gin.H{"participantId": ada.ID, "projectId": project.ID}).Code)

	path := fmt.Sprintf("/api/participants/%d", ada.ID)
	w := doRequest(t, r, "PATCH", path, gin.H{"bio": "compilers", "githubUrl": "https://github.com/ada"})
	require.Equal(t, 200, w.Code, w.Body.String())
	updated := decode[*ParticipantResponse](t, w)
	assert.Equal(t, "compilers", updated.Bio)
	assert.Equal(t, "https://github.com/ada", updated.GithubURL)
	assert.Equal(t, "Ada", updated.Name)

	w = doRequest(t, r, "PATCH", path, gin.H{"email": "bob@example.com"})
	assert.Equal(t, 409, w.Code)

	assert.Equal(t, 204, doRequest(t, r, "DELETE", path, nil).Code)
	assert.Equal(t, 404, doRequest(t, r, "GET", path, nil).Code)
	assert.Equal(t, 404, doRequest(t, r, "DELETE", path, nil).Code)

	w = doRequest(t, r, "GET", fmt.Sprintf("/api/projects/%d", project.ID), nil)
	assert.Empty(t, decode[*ProjectResponse](t, w).Team)
}

func TestProjectRoutes(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "H")
	other := createHackathon(t, r, "Other")
	createProject(t, r, "Zeta", hackathon.ID)
	alpha := createProject(t, r, "Alpha", hackathon.ID)
	createProject(t, r, "Elsewhere", other.ID)

	w := doRequest(t, r, "POST", "/api/projects", gin.H{"name": "Legacy", "hackathonId": hackathon.ID})
	require.Equal(t, 201, w.Code)
	assert.Equal(t, "Legacy", decode[*ProjectResponse](t, w).Title)

	w = doRequest(t, r, "POST", "/api/projects", gin.H{"title": "Lost", "hackathonId": 9999})
	assert.Equal(t, 404, w.Code)
	assertErrorBody(t, w, "Hackathon not found.")

	w = doRequest(t, r, "GET", fmt.Sprintf("/api/projects/hackathon/%d", hackathon.ID), nil)
	require.Equal(t, 200, w.Code)
	titles := make([]string, 0)
	for _, project := range decode[[]*ProjectResponse](t, w) {
		titles = append(titles, project.Title)
	}
	assert.Equal(t, []string{"Alpha", "Legacy", "Zeta"}, titles)

	w = doRequest(t, r, "PATCH", fmt.Sprintf("/api/projects/%d", alpha.ID), gin.H{"status": "submitted", "tags": []string{"AI", "ai", "web"}})
	require.Equal(t, 200, w.Code, w.Body.String())
	patched := decode[*ProjectResponse](t, w)
	assert.Equal(t, "submitted", patched.Status)
	assert.Equal(t, []string{"AI", "web"}, patched.Tags)

	w = doRequest(t, r, "GET", fmt.Sprintf("/api/projects?hackathon_id=%d&status=submitted", hackathon.ID), nil)
	list := decode[ProjectListResponse](t, w)
	assert.EqualValues(t, 1, list.Total)

	assert.Equal(t, 400, doRequest(t, r, "PATCH", fmt.Sprintf("/api/projects/%d", alpha.ID), gin.H{"status": "shipped"}).Code)
	assert.Equal(t, 204, doRequest(t, r, "DELETE", fmt.Sprintf("/api/projects/%d", alpha.ID), nil).Code)
	assert.Equal(t, 404, doRequest(t, r, "GET", fmt.Sprintf("/api/projects/%d", alpha.ID), nil).Code)
}

func TestInvalidPathIds(t *testing.T) {
	r, _ := setUpRouter(t)

	for _, path := range []string{"/api/hackathons/abc", "/api/participants/abc", "/api/projects/abc", "/api/projects/hackathon/abc"} {
		assert.Equal(t, 400, doRequest(t, r, "GET", path, nil).Code, path)
	}
	assert.Equal(t, 400, doRequest(t, r, "POST", "/api/jury/hackathons/abc/validate-podiums", nil).Code)
	assert.Equal(t, 404, doRequest(t, r, "GET", "/api/hackathons/9999", nil).Code)
}

func TestHackathonListCacheIsRefreshedOnWrite(t *testing.T) {
	r, _ := setUpRouter(t)

	w := doRequest(t, r, "GET", "/api/hackathons", nil)
	require.Equal(t, 200, w.Code)
	assert.Empty(t, decode[[]*HackathonResponse](t, w))

	createHackathon(t, r, "Autumn Jam")

	w = doRequest(t, r, "GET", "/api/hackathons", nil)
	hackathons := decode[[]*HackathonResponse](t, w)
	require.Len(t, hackathons, 1)
	assert.Equal(t, "Autumn Jam", hackathons[0].Name)
	assert.Equal(t, "draft", hackathons[0].Status)

	w = doRequest(t, r, "POST", "/api/hackathons", gin.H{"name": "   "})
	assert.Equal(t, 400, w.Code)
}

func TestWritesKeepUnrelatedCacheKeys(t *testing.T) {
	r, _, cacheStore := setUpRouterWithCache(t)
	require.NoError(t, cacheStore.Set("session:42", "alice", time.Minute))

	hackathon := createHackathon(t, r, "Spring Jam")
	projectsPath := fmt.Sprintf("/api/hackathons/%d/projects", hackathon.ID)

	w := doRequest(t, r, "GET", projectsPath, nil)
	require.Equal(t, 200, w.Code)
	assert.Empty(t, decode[[]*ProjectResponse](t, w))
	require.Len(t, decode[[]*HackathonResponse](t, doRequest(t, r, "GET", "/api/hackathons", nil)), 1)

	createProject(t, r, "Lantern", hackathon.ID)

	projects := decode[[]*ProjectResponse](t, doRequest(t, r, "GET", projectsPath, nil))
	require.Len(t, projects, 1)
	assert.Equal(t, "Lantern", projects[0].Title)

	// the query string is not part of the page key
	w = doRequest(t, r, "GET", projectsPath+"?page=2", nil)
	assert.Len(t, decode[[]*ProjectResponse](t, w), 1)

	var session string
	require.NoError(t, cacheStore.Get("session:42", &session))
	assert.Equal(t, "alice", session)
}

func TestFailedWritesKeepCachedPages(t *testing.T) {
	r, _, cacheStore := setUpRouterWithCache(t)
	createHackathon(t, r, "Summer Jam")

	require.Equal(t, 200, doRequest(t, r, "GET", "/api/hackathons", nil).Code)
	var cached any
	require.NoError(t, cacheStore.Get(hackathonsPageKey(), &cached))

	require.Equal(t, 400, doRequest(t, r, "POST", "/api/hackathons", gin.H{"name": ""}).Code)
	assert.NoError(t, cacheStore.Get(hackathonsPageKey(), &cached))
}

func TestProjectsForReview(t *testing.T) {
	r, _ := setUpRouter(t)
	hackathon := createHackathon(t, r, "Winter Jam")
	createProject(t, r, "P", hackathon.ID)

	w := doRequest(t, r, "GET", fmt.Sprintf("/api/jury/projects-for-review?hackathon_id=%d", hackathon.ID), nil)
	require.Equal(t, 200, w.Code)
	projects := decode[[]*ReviewProjectResponse](t, w)
	require.Len(t, projects, 1)
	assert.Equal(t, "Winter Jam", projects[0].HackathonName)
	assert.NotNil(t, projects[0].Team)

	assert.Equal(t, 400, doRequest(t, r, "GET", "/api/jury/projects-for-review?hackathon_id=x", nil).Code)
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := setUpRouter(t)

	w := doRequest(t, r, "GET", "/api/hackathons", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/api/hackathons", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestScoreWebSocket(t *testing.T) {
	r, hub := setUpRouter(t)
	hackathon := createHackathon(t, r, "Live")
	project := createProject(t, r, "P", hackathon.ID)
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + fmt.Sprintf("/api/jury/hackathons/%d/scores/ws", hackathon.ID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var snapshot ScoreMessage
	require.NoError(t, conn.ReadJSON(&snapshot))
	assert.Equal(t, "snapshot", snapshot.Type)
	require.Len(t, snapshot.Projects, 1)
	assert.Equal(t, 1, hub.ListenerCount(hackathon.ID))

	w := doRequest(t, r, "PATCH", fmt.Sprintf("/api/jury/projects/%d/score", project.ID), gin.H{"score": 77.5})
	require.Equal(t, 200, w.Code)

	var update ScoreMessage
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "score", update.Type)
	require.NotNil(t, update.Score)
	assert.Equal(t, project.ID, update.Score.ProjectID)
	assert.Equal(t, 77.5, update.Score.Score)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ListenerCount(hackathon.ID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestScoreWebSocketUnknownHackathon(t *testing.T) {
	r, _ := setUpRouter(t)

	assert.Equal(t, 404, doRequest(t, r, "GET", "/api/jury/hackathons/42/scores/ws", nil).Code)
}

func TestCreateHackathonAcceptsCalendarDates(t *testing.T) {
	r, _ := setUpRouter(t)

	w := doRequest(t, r, "POST", "/api/hackathons", `{"name": "H", "startDate": "2025-06-01", "endDate": "2025-06-03T18:00:00+02:00"}`)
	require.Equal(t, 201, w.Code, w.Body.String())
	hackathon := decode[*HackathonResponse](t, w)
	require.NotNil(t, hackathon.StartDate)
	require.NotNil(t, hackathon.EndDate)
	assert.True(t, hackathon.StartDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, hackathon.EndDate.Equal(time.Date(2025, 6, 3, 16, 0, 0, 0, time.UTC)))

	w = doRequest(t, r, "POST", "/api/hackathons", `{"name": "Undated", "startDate": null}`)
	require.Equal(t, 201, w.Code, w.Body.String())
	assert.Nil(t, decode[*HackathonResponse](t, w).StartDate)
}

func TestCreateHackathonRejectsUnreadableDates(t *testing.T) {
	r, _ := setUpRouter(t)

	w := doRequest(t, r, "POST", "/api/hackathons", `{"name": "H", "startDate": "06/01/2025"}`)
	assert.Equal(t, 400, w.Code)
	assertErrorBody(t, w, `invalid date "06/01/2025": use YYYY-MM-DD or RFC 3339`)

	w = doRequest(t, r, "POST", "/api/hackathons", `{"name": "H", "startDate": "2025-06-03", "endDate": "2025-06-01"}`)
	assert.Equal(t, 400, w.Code)
}
