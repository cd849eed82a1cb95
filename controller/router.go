package controller

import (
	"hackaplan/app_error"
	"hackaplan/repository"
	"hackaplan/service"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RouteInfo struct {
	Method      string
	Path        string
	HandlerFunc gin.HandlerFunc
	// Cached routes are served from the page cache until the next successful write.
	Cached bool
}

const apiBasePath = "/api"

func SetRoutes(r *gin.Engine, store *repository.Store, cacheStore persistence.CacheStore, hub *ScoreHub, publishers ...service.ScorePublisher) {
	juryService := service.NewJuryService(store, append([]service.ScorePublisher{hub}, publishers...)...)
	pages := NewPageCache(cacheStore, store.Hackathons)

	routes := make([]RouteInfo, 0)
	routes = append(routes, setupHackathonController(store)...)
	routes = append(routes, setupParticipantController(store)...)
	routes = append(routes, setupProjectController(store, juryService)...)
	routes = append(routes, setupJuryController(juryService)...)
	routes = append(routes, setupScoreSocketController(store, hub)...)

	api := r.Group(apiBasePath)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Method != http.MethodGet {
			handlerfuncs = append(handlerfuncs, pages.InvalidateMiddleware())
		}
		if route.Cached {
			handlerfuncs = append(handlerfuncs, pages.Handler(route.HandlerFunc))
		} else {
			handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		}
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set("request_id", requestId)
		c.Header("X-Request-ID", requestId)
		c.Next()
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		app_error.Message(c, 400, "invalid " + name + ": " + c.Param(name))
		return 0, false
	}
	return value, true
}

// intQuery returns 0 when the query parameter is absent.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		app_error.Message(c, 400, name + " must be an integer")
		return 0, false
	}
	return value, true
}

func paginationQuery(c *gin.Context) (repository.Pagination, bool) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return repository.Pagination{}, false
	}
	offset, ok := intQuery(c, "offset")
	if !ok {
		return repository.Pagination{}, false
	}
	return repository.Pagination{Limit: limit, Offset: offset}, true
}
