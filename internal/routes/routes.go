package routes

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const frontendGroup = "frontend"

// Route names registered under the frontend group.
const (
	RouteBlog        = "blog"
	RouteEvent       = "event"
	RouteCaseStudy   = "case_study"
	RouteInstitution = "institution"
)

// Resolver builds canonical frontend URLs for normalized records so list
// payloads can carry ready-to-use hrefs.
type Resolver struct {
	group *urlkit.Group
}

// NewResolver registers the frontend route table against the given base URL.
func NewResolver(frontendBaseURL string) (*Resolver, error) {
	base := strings.TrimRight(strings.TrimSpace(frontendBaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("routes: frontend base url is required")
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    frontendGroup,
				BaseURL: base,
				Paths: map[string]string{
					RouteBlog:        "/blogs/:slug",
					RouteEvent:       "/events/:slug",
					RouteCaseStudy:   "/case-studies/:slug",
					RouteInstitution: "/institutions/:slug",
				},
			},
		},
	})

	return &Resolver{group: manager.Group(frontendGroup)}, nil
}

// BlogURL returns the canonical blog page URL.
func (r *Resolver) BlogURL(slug string) (string, error) {
	return r.build(RouteBlog, slug)
}

// EventURL returns the canonical event page URL.
func (r *Resolver) EventURL(slug string) (string, error) {
	return r.build(RouteEvent, slug)
}

// CaseStudyURL returns the canonical case-study page URL.
func (r *Resolver) CaseStudyURL(slug string) (string, error) {
	return r.build(RouteCaseStudy, slug)
}

// InstitutionURL returns the canonical institution page URL.
func (r *Resolver) InstitutionURL(slug string) (string, error) {
	return r.build(RouteInstitution, slug)
}

func (r *Resolver) build(route, slug string) (string, error) {
	if r == nil || r.group == nil {
		return "", fmt.Errorf("routes: resolver not configured")
	}
	if strings.TrimSpace(slug) == "" {
		return "", fmt.Errorf("routes: slug is required for route %q", route)
	}
	return r.group.Builder(route).WithParam("slug", slug).Build()
}
