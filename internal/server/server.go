package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sonascale/go-content/internal/client"
	"github.com/sonascale/go-content/internal/logging"
	"github.com/sonascale/go-content/internal/routes"
	"github.com/sonascale/go-content/pkg/interfaces"
)

// Server is the BFF between the SCALE frontend and the CMS. It exposes
// normalized JSON only; raw CMS payloads never cross this boundary.
type Server struct {
	cms       *client.Client
	routes    *routes.Resolver
	mediaBase string
	log       interfaces.Logger
	instLog   interfaces.Logger
}

// Option mutates server construction.
type Option func(*Server)

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithInstitutionLogger attaches the logger used for institution section
// fetching, so degraded sections surface under their own namespace.
func WithInstitutionLogger(logger interfaces.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.instLog = logger
		}
	}
}

// WithMediaBaseURL sets the CMS origin used to absolutize relative upload
// paths in card payloads. Empty leaves paths relative.
func WithMediaBaseURL(base string) Option {
	return func(s *Server) {
		s.mediaBase = base
	}
}

// New builds a server over the given CMS client and URL resolver.
func New(cms *client.Client, resolver *routes.Resolver, opts ...Option) *Server {
	s := &Server{
		cms:     cms,
		routes:  resolver,
		log:     logging.NoOp(),
		instLog: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine assembles the gin engine with middleware and the API routes.
// allowedOrigins empty means same-origin only.
func (s *Server) Engine(allowedOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		}))
	}

	api := engine.Group("/api")
	{
		api.GET("/blogs", s.listBlogs)
		api.GET("/blogs/:slug", s.getBlog)
		api.POST("/blogs/:id/view", s.incrementBlogView)
		api.GET("/events", s.listEvents)
		api.GET("/events/:slug", s.getEvent)
		api.GET("/case-studies", s.listCaseStudies)
		api.GET("/case-studies/:slug", s.getCaseStudy)
		api.GET("/categories", s.listCategories)
		api.GET("/tags", s.listTags)
		api.GET("/institutions/:slug/sections", s.institutionSections)
		api.GET("/institutions/:slug/sections/:section", s.institutionSection)
		api.POST("/comments", s.submitComment)
		api.POST("/leads", s.submitLead)
		api.POST("/collaborations", s.submitCollaboration)
	}

	return engine
}
