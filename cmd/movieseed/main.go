package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mflix/mongodb"
	"mflix/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"
	noGenres            = "(no genres listed)"
)

var titleYear = regexp.MustCompile(`^(.*)\s+\((\d{4})\)$`)

func main() {
	var (
		csvPath   string
		zipURL    string
		limit     int
		batchSize int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	flag.StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.IntVar(&batchSize, "batch", 500, "Documents written per bulk request")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	conn, err := mongodb.NewConnection(mongodb.Options{
		URI:              cfg.Mongo.URI,
		Database:         cfg.Mongo.Database,
		ConnectTimeout:   cfg.Mongo.ConnectTimeout,
		OperationTimeout: cfg.Mongo.OperationTimeout,
	})
	if err != nil {
		slog.Error("cannot open mongodb connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	cleanup := func() {}
	if csvPath == "" {
		path, c, err := downloadAndExtract(zipURL)
		if err != nil {
			slog.Error("failed to download dataset", "error", err)
			os.Exit(1)
		}
		csvPath = path
		cleanup = c
	}
	defer cleanup()

	count, err := importMovies(context.Background(), conn.Collection(mongodb.MoviesCollection), csvPath, limit, batchSize)
	if err != nil {
		slog.Error("import failed", "error", err, "rows", count)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

func downloadAndExtract(zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if !strings.HasSuffix(file.Name, "movies.csv") {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		destPath := filepath.Join(destDir, filepath.Base(file.Name))
		out, err := os.Create(destPath)
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}

		return destPath, nil
	}

	return "", errors.New("movies.csv not found in zip")
}

// importMovies upserts every csv row into coll keyed by its MovieLens id, so
// running the import twice leaves one document per movie.
func importMovies(ctx context.Context, coll *mongo.Collection, csvPath string, limit, batchSize int) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	count, err := readMovies(file, limit, batchSize, func(batch []movieRecord) error {
		models := make([]mongo.WriteModel, 0, len(batch))
		for _, rec := range batch {
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "movielens_id", Value: rec.MovieLensID}}).
				SetReplacement(rec.document()).
				SetUpsert(true))
		}
		_, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
		return err
	})
	return count, err
}

type movieRecord struct {
	MovieLensID int
	Title       string
	Year        int
	Genres      []string
}

func (r movieRecord) document() bson.D {
	doc := bson.D{
		{Key: "movielens_id", Value: r.MovieLensID},
		{Key: "title", Value: r.Title},
		{Key: "genres", Value: r.Genres},
		{Key: "type", Value: "movie"},
		{Key: "lastupdated", Value: time.Now().UTC()},
	}
	if r.Year != 0 {
		doc = append(doc, bson.E{Key: "year", Value: r.Year})
	}
	return doc
}

// readMovies parses movies.csv from r and hands rows to flush in batches.
func readMovies(r io.Reader, limit, batchSize int, flush func([]movieRecord) error) (int, error) {
	if batchSize <= 0 {
		batchSize = 500
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxMovieID, idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	batch := make([]movieRecord, 0, batchSize)
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		rec, ok := parseMovieRecord(record, idxMovieID, idxTitle, idxGenres)
		if !ok {
			continue
		}

		batch = append(batch, rec)
		count++
		if len(batch) == batchSize {
			if err := flush(batch); err != nil {
				return count - len(batch), err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := flush(batch); err != nil {
			return count - len(batch), err
		}
	}
	return count, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, 0, err
	}

	idxMovieID, idxTitle, idxGenres := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "movieId":
			idxMovieID = i
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxMovieID == -1 || idxTitle == -1 || idxGenres == -1 {
		return 0, 0, 0, errors.New("missing required columns in csv header")
	}

	return idxMovieID, idxTitle, idxGenres, nil
}

func parseMovieRecord(record []string, idxMovieID, idxTitle, idxGenres int) (movieRecord, bool) {
	if idxMovieID >= len(record) || idxTitle >= len(record) || idxGenres >= len(record) {
		return movieRecord{}, false
	}

	movieID, err := strconv.Atoi(strings.TrimSpace(record[idxMovieID]))
	if err != nil {
		return movieRecord{}, false
	}

	rec := movieRecord{MovieLensID: movieID, Genres: []string{}}
	rec.Title, rec.Year = splitTitleYear(strings.TrimSpace(record[idxTitle]))
	if rec.Title == "" {
		return movieRecord{}, false
	}

	if genres := strings.TrimSpace(record[idxGenres]); genres != "" && genres != noGenres {
		rec.Genres = strings.Split(genres, "|")
	}
	return rec, true
}

// splitTitleYear turns "Toy Story (1995)" into ("Toy Story", 1995).
func splitTitleYear(title string) (string, int) {
	m := titleYear.FindStringSubmatch(title)
	if m == nil {
		return title, 0
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return title, 0
	}
	return strings.TrimSpace(m[1]), year
}
