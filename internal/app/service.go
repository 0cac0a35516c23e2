// Package app provides the scoring service that orchestrates result
// submissions: validate, normalize, upsert, re-rank the workout and
// re-aggregate the category, in that order, serialized per category.
package app

import (
	"context"
	"time"

	repository "github.com/matchfit/scorebox/internal/adapters/repository"
	"github.com/matchfit/scorebox/pkg/logger"
)

// Default service configuration constants.
const (
	defaultLockTimeout = 2 * time.Second
)

// Service implements the result gateway and the read surface.
type Service struct {
	catalog      repository.CatalogStore
	participants repository.ParticipantStore
	results      repository.ResultStore

	locks       *categoryLocks
	lockTimeout time.Duration

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStores sets the backing stores. A single MemoryStore satisfies all
// three interfaces.
func WithStores(catalog repository.CatalogStore, participants repository.ParticipantStore, results repository.ResultStore) Option {
	return func(s *Service) {
		if catalog != nil {
			s.catalog = catalog
		}
		if participants != nil {
			s.participants = participants
		}
		if results != nil {
			s.results = results
		}
	}
}

// WithLockTimeout bounds how long a submission waits for its category lock.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without options it runs on a fresh in-memory
// store, which is what tests and the load generator use.
func New(opts ...Option) *Service {
	s := &Service{
		locks:       newCategoryLocks(),
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil || s.participants == nil || s.results == nil {
		store := repository.NewMemoryStore()
		if s.catalog == nil {
			s.catalog = store
		}
		if s.participants == nil {
			s.participants = store
		}
		if s.results == nil {
			s.results = store
		}
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"resultRecords": s.results.Count(context.Background()),
		"lockTimeoutMs": s.lockTimeout.Milliseconds(),
	}
}
