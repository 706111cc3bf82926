package movie

import (
	"context"
	"errors"

	"mflix/pkg/metrics"

	"go.uber.org/zap"
)

type Service interface {
	ListMovies(ctx context.Context, f Filter, page, perPage int) ([]Movie, int64)
	MoviesByCountry(ctx context.Context, countries []string) []CountryTitle
	FacetedSearch(ctx context.Context, cast []string, page, perPage int) (FacetResult, error)
	GetMovie(ctx context.Context, id string) (*MovieDetail, error)
	Ping(ctx context.Context) error
}

type Repository interface {
	Find(ctx context.Context, f Filter, page, perPage int) ([]Movie, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FindByCountries(ctx context.Context, countries []string) ([]CountryTitle, error)
	FacetedSearch(ctx context.Context, cast []string, page, perPage int) (FacetResult, error)
	// FindByID returns (nil, nil) when no movie has the id and ErrInvalidID
	// when id is not a well-formed identifier.
	FindByID(ctx context.Context, id string) (*MovieDetail, error)
	Ping(ctx context.Context) error
}

type Usecase struct {
	r      Repository
	logger *zap.SugaredLogger
}

func NewUsecase(r Repository, logger *zap.SugaredLogger) *Usecase {
	return &Usecase{r: r, logger: logger}
}

// ListMovies returns one page of movies matching f and, on the first page
// only, the total number of matches. Later pages report a total of 0,
// meaning unknown. Store failures degrade to an empty page.
func (uc *Usecase) ListMovies(ctx context.Context, f Filter, page, perPage int) ([]Movie, int64) {
	page, perPage = normalizePaging(page, perPage)

	movies, err := uc.r.Find(ctx, f, page, perPage)
	if err != nil {
		uc.storeFailure("find", err, "filter", f.Params(), "page", page)
		return []Movie{}, 0
	}

	if page != 0 {
		return movies, 0
	}

	total, err := uc.r.Count(ctx, f)
	if err != nil {
		uc.storeFailure("count", err, "filter", f.Params())
		return []Movie{}, 0
	}
	return movies, total
}

// MoviesByCountry returns the title and id of every movie from any of the
// given countries. Store failures degrade to an empty list.
func (uc *Usecase) MoviesByCountry(ctx context.Context, countries []string) []CountryTitle {
	titles, err := uc.r.FindByCountries(ctx, countries)
	if err != nil {
		uc.storeFailure("find_by_countries", err, "countries", countries)
		return []CountryTitle{}
	}
	return titles
}

func (uc *Usecase) FacetedSearch(ctx context.Context, cast []string, page, perPage int) (FacetResult, error) {
	if len(cast) == 0 {
		return FacetResult{}, ErrCastRequired
	}
	page, perPage = normalizePaging(page, perPage)

	res, err := uc.r.FacetedSearch(ctx, cast, page, perPage)
	if err != nil {
		uc.storeFailure("faceted_search", err, "cast", cast, "page", page)
		return FacetResult{}, ErrResultsTooLarge
	}
	return res, nil
}

// GetMovie returns the movie with its comments, or nil when no movie has
// the id. A malformed id is reported as ErrInvalidID.
func (uc *Usecase) GetMovie(ctx context.Context, id string) (*MovieDetail, error) {
	m, err := uc.r.FindByID(ctx, id)
	if errors.Is(err, ErrInvalidID) {
		return nil, err
	}
	if err != nil {
		uc.storeFailure("find_by_id", err, "id", id)
		return nil, err
	}
	return m, nil
}

func (uc *Usecase) Ping(ctx context.Context) error {
	return uc.r.Ping(ctx)
}

func (uc *Usecase) storeFailure(op string, err error, keysAndValues ...interface{}) {
	metrics.StoreFailures.WithLabelValues(op).Inc()
	uc.logger.Errorw("movie store operation failed",
		append([]interface{}{"operation", op, "error", err}, keysAndValues...)...)
}

func normalizePaging(page, perPage int) (int, int) {
	if page < 0 {
		page = 0
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return page, perPage
}
