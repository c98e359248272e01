package services

import (
	"context"
	"fmt"

	"marine-guardian/internal/logger"
	"marine-guardian/internal/models"
)

// RecordStore is the persistence surface the service needs
type RecordStore interface {
	Create(ctx context.Context, in models.SightingInput) (int64, error)
	FetchAll(ctx context.Context, key models.SortKey) ([]models.Sighting, error)
	Get(ctx context.Context, id int64) (models.Sighting, error)
	Update(ctx context.Context, id int64, in models.SightingInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	AggregateByStatus(ctx context.Context) (map[string]int, error)
}

// ErrNotFound is returned when an update or delete touched no row
var ErrNotFound = models.ErrNotFound

// SightingService validates user input before it reaches the store and
// turns zero-row writes into ErrNotFound
type SightingService struct {
	store  RecordStore
	logger logger.Logger
}

// NewSightingService creates a service over store
func NewSightingService(store RecordStore, log logger.Logger) *SightingService {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &SightingService{
		store:  store,
		logger: log,
	}
}

// Add validates in and creates a sighting, returning its id
func (ss *SightingService) Add(ctx context.Context, in models.SightingInput) (int64, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return 0, err
	}

	id, err := ss.store.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	ss.logger.Info("SightingService", "sighting added", map[string]interface{}{
		"id":          id,
		"common_name": in.CommonName,
		"status":      string(in.Status),
	})
	return id, nil
}

// List returns every sighting in the requested order
func (ss *SightingService) List(ctx context.Context, key models.SortKey) ([]models.Sighting, error) {
	sightings, err := ss.store.FetchAll(ctx, key)
	if err != nil {
		return nil, err
	}

	ss.logger.Debug("SightingService", "sightings listed", map[string]interface{}{
		"sort":  string(key),
		"count": len(sightings),
	})
	return sightings, nil
}

// Get returns one sighting or ErrNotFound
func (ss *SightingService) Get(ctx context.Context, id int64) (models.Sighting, error) {
	return ss.store.Get(ctx, id)
}

// Update validates in and rewrites sighting id
func (ss *SightingService) Update(ctx context.Context, id int64, in models.SightingInput) error {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	affected, err := ss.store.Update(ctx, id, in)
	if err != nil {
		return err
	}
	if affected == 0 {
		ss.logger.Warning("SightingService", "update matched no sighting", map[string]interface{}{
			"id": id,
		})
		return fmt.Errorf("update sighting %d: %w", id, ErrNotFound)
	}

	ss.logger.Info("SightingService", "sighting updated", map[string]interface{}{
		"id": id,
	})
	return nil
}

// Delete removes sighting id
func (ss *SightingService) Delete(ctx context.Context, id int64) error {
	affected, err := ss.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		ss.logger.Warning("SightingService", "delete matched no sighting", map[string]interface{}{
			"id": id,
		})
		return fmt.Errorf("delete sighting %d: %w", id, ErrNotFound)
	}

	ss.logger.Info("SightingService", "sighting deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}

// StatusCounts returns the raw per-status counts as stored
func (ss *SightingService) StatusCounts(ctx context.Context) (map[string]int, error) {
	return ss.store.AggregateByStatus(ctx)
}

// Statistics returns the chart-ready breakdown in fixed status order
func (ss *SightingService) Statistics(ctx context.Context) ([]models.StatusCount, error) {
	counts, err := ss.store.AggregateByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return models.Breakdown(counts), nil
}
