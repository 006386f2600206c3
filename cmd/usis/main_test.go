package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itzMRZ/usisportal/internal/app"
	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/core/ports"
)

type stubCatalogLoader struct {
	catalog *domain.Catalog
	err     error
}

func (s *stubCatalogLoader) Load(string) (*domain.Catalog, error) {
	return s.catalog, s.err
}

type stubSource struct{}

func (stubSource) FetchFeed(context.Context) ([]json.RawMessage, error) {
	return []json.RawMessage{}, nil
}

func (stubSource) FetchStatic(context.Context, string) ([]json.RawMessage, error) {
	return []json.RawMessage{}, nil
}

type stubCache struct{}

func (stubCache) Save(string, []domain.Course, time.Duration) error { return nil }

func (stubCache) Get(string) ([]domain.Course, error) { return nil, nil }

type stubLogger struct {
	errs []error
}

func (s *stubLogger) Info(string)     {}
func (s *stubLogger) Warn(string)     {}
func (s *stubLogger) Error(err error) { s.errs = append(s.errs, err) }

func newProvider(catalogLoader ports.CatalogLoader, log *stubLogger) ComponentProvider {
	application := app.New(catalogLoader, stubCache{}, log, func(*domain.Catalog) ports.CourseSource {
		return stubSource{}
	})

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	log := &stubLogger{}
	provider := newProvider(&stubCatalogLoader{catalog: &domain.Catalog{PageSize: 10}}, log)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	log := &stubLogger{}
	provider := newProvider(&stubCatalogLoader{err: domain.ErrConfigReadFailed}, log)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"load"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.NotEmpty(t, log.errs)
}
