package httpserver

import (
	"strconv"

	"mflix/movie"

	"github.com/labstack/echo/v4"
)

const successMessage = "OK"

type APIResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// MoviesResponse is the unfiltered first page.
type MoviesResponse struct {
	Movies         []movie.Movie          `json:"movies"`
	Page           int                    `json:"page"`
	Filters        map[string]interface{} `json:"filters"`
	EntriesPerPage int                    `json:"entriesPerPage"`
	TotalResults   int64                  `json:"totalResults"`
}

// SearchResponse is one page of filtered movies. TotalResults is 0 past the
// first page, meaning unknown.
type SearchResponse struct {
	Movies         []movie.Movie          `json:"movies"`
	Page           int                    `json:"page"`
	Filters        map[string]interface{} `json:"filters"`
	EntriesPerPage int                    `json:"entries_per_page"`
	TotalResults   int64                  `json:"total_results"`
}

type Facets struct {
	Runtime []movie.Bucket `json:"runtime"`
	Rating  []movie.Bucket `json:"rating"`
}

type FacetedSearchResponse struct {
	Movies         []movie.Movie          `json:"movies"`
	Facets         Facets                 `json:"facets"`
	Page           int                    `json:"page"`
	Filters        map[string]interface{} `json:"filters"`
	EntriesPerPage int                    `json:"entries_per_page"`
	TotalResults   int64                  `json:"total_results"`
}

type CountriesResponse struct {
	Titles []movie.CountryTitle `json:"titles"`
}

type MovieResponse struct {
	Movie       *movie.MovieDetail `json:"movie"`
	UpdatedType string             `json:"updatedType"`
}

func writeSuccess(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, APIResponse{
		Code:    strconv.Itoa(status),
		Message: successMessage,
		Result:  result,
	})
}
