package caching

import (
	"context"
	"time"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// memoryCacheService keeps entries in process. Used when no redis address is configured.
type memoryCacheService struct {
	store *gocache.Cache
}

func NewMemoryCacheService(defaultTTL time.Duration) CacheService {
	return &memoryCacheService{store: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (m *memoryCacheService) GetNumberFormat(_ context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	v, ok := m.store.Get(numberFormatKey(tenantID, kind))
	if !ok {
		return nil, nil
	}
	// hand out a copy so callers cannot mutate the cached value
	format := *v.(*models.NumberFormat)
	return &format, nil
}

func (m *memoryCacheService) SetNumberFormat(_ context.Context, format *models.NumberFormat, ttl time.Duration) error {
	stored := *format
	m.store.Set(numberFormatKey(format.BusinessProfileID, format.Kind), &stored, ttl)
	return nil
}

func (m *memoryCacheService) DeleteNumberFormat(_ context.Context, tenantID uuid.UUID, kind models.DocumentKind) error {
	m.store.Delete(numberFormatKey(tenantID, kind))
	return nil
}

func (m *memoryCacheService) Ping(context.Context) error {
	return nil
}
