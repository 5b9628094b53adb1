package api

import (
	"github.com/gin-gonic/gin"

	"github.com/spektr-org/newsdash/dataset"
	"github.com/spektr-org/newsdash/engine"
)

// Server answers dashboard requests over one shared, read-only Dataset.
// Each request carries its own selection; nothing is kept between requests.
type Server struct {
	ds   *dataset.Dataset
	opts []engine.Option
}

// NewServer creates a Server. opts are passed to every engine pass.
func NewServer(ds *dataset.Dataset, opts ...engine.Option) *Server {
	return &Server{ds: ds, opts: append(ds.EngineOptions(), opts...)}
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *Server, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware...)

	RegisterHealthRoutes(r)
	s.RegisterDashboardRoutes(r)
	return r
}
