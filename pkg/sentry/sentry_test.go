package sentry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureTransport struct {
	mu     sync.Mutex
	events []*sentrygo.Event
}

func (t *captureTransport) Configure(sentrygo.ClientOptions) {}

func (t *captureTransport) SendEvent(e *sentrygo.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

func (t *captureTransport) Flush(time.Duration) bool { return true }

func (t *captureTransport) Close() {}

func (t *captureTransport) Events() []*sentrygo.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*sentrygo.Event(nil), t.events...)
}

func initCapture(t *testing.T) *captureTransport {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("SENTRY_DSN", "https://public@sentry.example.com/1")

	transport := &captureTransport{}
	err := sentrygo.Init(sentrygo.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)
	return transport
}

func TestSentry_BuilderPattern(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(nil, nil)
	err := errors.New("movie store unavailable")
	extras := map[string]interface{}{"movie_id": "573a1390f29313caabcd4135"}
	tags := map[string]string{"route": "/api/v1/movies/id/:id"}

	s := new(Sentry)
	result := s.WithContext(ctx).
		WithError(err).
		WithMessage("lookup failed").
		WithLevel(sentrygo.LevelWarning).
		WithExtras(extras).
		WithTags(tags)

	assert.Same(t, s, result, "should return same instance for chaining")
	assert.Equal(t, ctx, s.context)
	assert.Equal(t, err, s.error)
	assert.Equal(t, "lookup failed", s.message)
	assert.Equal(t, sentrygo.LevelWarning, s.level)
	assert.Equal(t, extras, s.extras)
	assert.Equal(t, tags, s.tags)
}

func TestSentry_DisabledEnvironments(t *testing.T) {
	tests := []struct {
		name string
		env  string
		dsn  string
	}{
		{name: "local environment", env: "local", dsn: "https://public@sentry.example.com/1"},
		{name: "empty dsn", env: "production", dsn: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := initCapture(t)
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("SENTRY_DSN", tt.dsn)

			assert.False(t, enabled())
			new(Sentry).Warning("ignored")
			new(Sentry).Error(errors.New("ignored"))

			assert.Empty(t, transport.Events())
		})
	}
}

func TestSentry_ErrorCarriesTagsAndExtras(t *testing.T) {
	transport := initCapture(t)

	new(Sentry).
		WithTags(map[string]string{"route": "/api/v1/movies/facet-search", "method": http.MethodGet}).
		WithExtras(map[string]interface{}{"query": "cast=Tom+Hanks"}).
		Error(errors.New("exceeded memory limit"))

	events := transport.Events()
	require.Len(t, events, 1)
	assert.Equal(t, sentrygo.LevelError, events[0].Level)
	assert.Equal(t, "/api/v1/movies/facet-search", events[0].Tags["route"])
	assert.Equal(t, http.MethodGet, events[0].Tags["method"])
	assert.Equal(t, "cast=Tom+Hanks", events[0].Extra["query"])
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "exceeded memory limit", events[0].Exception[0].Value)
}

func TestSentry_WarningfFormatsMessage(t *testing.T) {
	transport := initCapture(t)

	new(Sentry).WithTags(map[string]string{"check": "readiness"}).Warningf("database unavailable: %v", errors.New("timeout"))

	events := transport.Events()
	require.Len(t, events, 1)
	assert.Equal(t, sentrygo.LevelWarning, events[0].Level)
	assert.Equal(t, "database unavailable: timeout", events[0].Message)
	assert.Equal(t, "readiness", events[0].Tags["check"])
}

func TestSentry_RequestContext(t *testing.T) {
	initCapture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/id/abc", nil)
	rec := httptest.NewRecorder()
	rec.Header().Set(echo.HeaderXRequestID, "req-1")
	ctx := e.NewContext(req, rec)
	hub := sentrygo.CurrentHub().Clone()
	ctx.Set("sentry", hub)

	s := WithContext(ctx)

	assert.Same(t, hub, s.getHub(), "uses the request hub from the echo context")

	scope := sentrygo.NewScope()
	assert.NotPanics(t, func() { s.configScope(scope) })
	assert.NotPanics(t, func() { s.Error(errors.New("lookup failed")) })
}

func TestSentry_LevelMethods(t *testing.T) {
	t.Setenv("APP_ENV", "local")

	tests := []struct {
		name     string
		method   func(*Sentry)
		expected sentrygo.Level
	}{
		{name: "Warning", method: func(s *Sentry) { s.Warning("m") }, expected: sentrygo.LevelWarning},
		{name: "Warningf", method: func(s *Sentry) { s.Warningf("m %d", 1) }, expected: sentrygo.LevelWarning},
		{name: "Error", method: func(s *Sentry) { s.Error(errors.New("m")) }, expected: sentrygo.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(Sentry)
			tt.method(s)
			assert.Equal(t, tt.expected, s.level)
		})
	}
}

func TestSentry_Fatal(t *testing.T) {
	transport := initCapture(t)
	original := FlushTime
	FlushTime = 0
	defer func() { FlushTime = original }()

	Fatal(errors.New("cannot reach mongodb"))

	events := transport.Events()
	require.Len(t, events, 1)
	assert.Equal(t, sentrygo.LevelFatal, events[0].Level)
}
