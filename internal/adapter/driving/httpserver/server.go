package httpserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/malphitee/ec2-network-monitor/internal/application/usecase"
	"github.com/malphitee/ec2-network-monitor/internal/shared/types"
)

// errPrefix is prepended to the body of every 500 response.
const errPrefix = "错误: "

// Server exposes the traffic report over HTTP. Every path and method is
// served by the same handler; only the root path triggers notification
// pushes, so any other path acts as a silent preview.
type Server struct {
	Engine  *gin.Engine
	useCase *usecase.ReportUseCase
	console types.ConsoleInterface

	monitorOnce sync.Once
}

func NewServer(uc *usecase.ReportUseCase, console types.ConsoleInterface) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		Engine:  gin.New(),
		useCase: uc,
		console: console,
	}
	server.route()
	return server
}

func (s *Server) route() {
	s.Engine.Use(gin.Logger(), gin.Recovery())

	// Any method, any path. The report handler decides between notify and
	// silent preview based on the path.
	s.Engine.Any("/", s.report)
	s.Engine.NoRoute(s.report)
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run(addr string) error {
	s.console.LogInfo("listening on %s", addr)
	return s.Engine.Run(addr)
}

// report computes the month-to-date traffic report and returns its Markdown
// rendering. Pushes fire only for the root path.
func (s *Server) report(c *gin.Context) {
	s.monitorOnce.Do(func() {
		s.console.LogInfo("report handler monitoring initialised")
	})

	c.Header("Access-Control-Allow-Origin", "*")

	notify := c.Request.URL.Path == "/"
	result, err := s.useCase.Run(c.Request.Context(), notify)
	if err != nil {
		s.console.LogError("report failed: %s", err)
		c.String(http.StatusInternalServerError, "%s%s", errPrefix, err.Error())
		return
	}

	c.String(http.StatusOK, "%s", result.Markdown)
}
