package httpserver

import (
	"errors"
	"net/http"

	"mflix/errs"
	"mflix/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.GET("/", s.handleListMovies)
	g.GET("/search", s.handleSearchMovies)
	g.GET("/countries", s.handleMoviesByCountry)
	g.GET("/facet-search", s.handleFacetedSearch)
	g.GET("/id/:id", s.handleGetMovie)
}

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

// handleListMovies godoc
// @Summary List Movies
// @Description First page of the catalog, most reviewed first
// @Tags movies
// @Produce json
// @Success 200 {object} MoviesResponse
// @Router /api/v1/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, total := s.MovieService.ListMovies(c.Request().Context(), movie.Filter{}, 0, s.PerPage)

	return c.JSON(http.StatusOK, MoviesResponse{
		Movies:         movies,
		Page:           0,
		Filters:        map[string]interface{}{},
		EntriesPerPage: s.PerPage,
		TotalResults:   total,
	})
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Filter movies by text, cast or genre. Only one filter is honored, in that priority.
// @Description total_results is only computed for page 0 and is 0 otherwise.
// @Tags movies
// @Produce json
// @Param text query string false "Full-text search"
// @Param cast query []string false "Cast members" collectionFormat(multi)
// @Param genre query []string false "Genres" collectionFormat(multi)
// @Param page query int false "Zero-based page" minimum(0) maximum(100000)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	page, err := s.parsePage(c)
	if err != nil {
		return err
	}
	filter := filterFromQuery(c.QueryParams())

	movies, total := s.MovieService.ListMovies(c.Request().Context(), filter, page, s.PerPage)

	return c.JSON(http.StatusOK, SearchResponse{
		Movies:         movies,
		Page:           page,
		Filters:        filter.Params(),
		EntriesPerPage: s.PerPage,
		TotalResults:   total,
	})
}

// handleMoviesByCountry godoc
// @Summary Movies By Country
// @Description Titles and ids of movies from any of the given countries
// @Tags movies
// @Produce json
// @Param countries query []string true "Countries" collectionFormat(multi)
// @Success 200 {object} CountriesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/movies/countries [get]
func (s *Server) handleMoviesByCountry(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	var req CountriesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	titles := s.MovieService.MoviesByCountry(c.Request().Context(), req.Countries)

	return c.JSON(http.StatusOK, CountriesResponse{Titles: titles})
}

// handleFacetedSearch godoc
// @Summary Faceted Search
// @Description Movies featuring any of the cast members with runtime and critic score histograms.
// @Description Without cast this behaves like /search.
// @Tags movies
// @Produce json
// @Param cast query []string false "Cast members" collectionFormat(multi)
// @Param page query int false "Zero-based page" minimum(0) maximum(100000)
// @Success 200 {object} FacetedSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/movies/facet-search [get]
func (s *Server) handleFacetedSearch(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	cast := castFromQuery(c.QueryParams())
	if cast == nil {
		return s.handleSearchMovies(c)
	}

	page, err := s.parsePage(c)
	if err != nil {
		return err
	}

	res, err := s.MovieService.FacetedSearch(c.Request().Context(), cast, page, s.PerPage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, FacetedSearchResponse{
		Movies:         res.Movies,
		Facets:         Facets{Runtime: res.Runtime, Rating: res.Rating},
		Page:           page,
		Filters:        movie.CastFilter(cast...).Params(),
		EntriesPerPage: s.PerPage,
		TotalResults:   res.Count,
	})
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description A movie with its comments, newest first
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} MovieResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/movies/id/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), c.Param("id"))
	if errors.Is(err, movie.ErrInvalidID) {
		// a malformed id can never match a movie
		return movie.ErrNotFound
	}
	if err != nil {
		return err
	}
	if m == nil {
		return movie.ErrNotFound
	}

	return c.JSON(http.StatusOK, MovieResponse{Movie: m, UpdatedType: m.UpdatedType()})
}
