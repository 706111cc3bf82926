package httpserver

import (
	"net/url"
	"strconv"
	"strings"

	"mflix/movie"

	"github.com/labstack/echo/v4"
)

// PageRequest bounds the page parameter. The catalog holds tens of thousands
// of movies, so any page past the maximum would be empty anyway.
type PageRequest struct {
	Page int `query:"page" validate:"min=0,max=100000"`
}

type CountriesRequest struct {
	Countries []string `query:"countries" validate:"required,min=1,dive,notblank"`
}

// parsePage reads the page query parameter. Values that are not integers
// fall back to the first page; negative pages are rejected.
func (s *Server) parsePage(c echo.Context) (int, error) {
	var req PageRequest
	if raw := strings.TrimSpace(c.QueryParam("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			s.Logger.Debugw("bad page value, defaulting to 0", "page", raw, "request_id", s.requestID(c))
		} else {
			req.Page = page
		}
	}
	if err := c.Validate(&req); err != nil {
		return 0, err
	}
	return req.Page, nil
}

// filterFromQuery picks the single honored filter. When several filter keys
// carry a value the one first in movie.FilterPriority wins; keys given only
// blank values are ignored.
func filterFromQuery(values url.Values) movie.Filter {
	for _, kind := range movie.FilterPriority {
		if v := nonBlank(values[string(kind)]); v != nil {
			return movie.NewFilter(kind, v)
		}
	}
	return movie.Filter{}
}

// castFromQuery returns the requested cast members, or nil when none were given.
func castFromQuery(values url.Values) []string {
	return nonBlank(values["cast"])
}

func nonBlank(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
