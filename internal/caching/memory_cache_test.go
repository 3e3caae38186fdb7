package caching

import (
	"context"
	"testing"
	"time"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_NumberFormatLifecycle(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheService(time.Minute)
	tenantID := uuid.New()

	got, err := cache.GetNumberFormat(ctx, tenantID, models.DocumentKindInvoice)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache is a miss")

	format := &models.NumberFormat{BusinessProfileID: tenantID, Kind: models.DocumentKindInvoice, Prefix: "INV", PaddingDigits: 5}
	require.NoError(t, cache.SetNumberFormat(ctx, format, 0))

	got, err = cache.GetNumberFormat(ctx, tenantID, models.DocumentKindInvoice)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "INV", got.Prefix)

	quotation, _ := cache.GetNumberFormat(ctx, tenantID, models.DocumentKindQuotation)
	assert.Nil(t, quotation, "kinds are cached separately")

	require.NoError(t, cache.DeleteNumberFormat(ctx, tenantID, models.DocumentKindInvoice))
	got, _ = cache.GetNumberFormat(ctx, tenantID, models.DocumentKindInvoice)
	assert.Nil(t, got)
}

func TestMemoryCache_ReturnsDetachedCopies(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheService(time.Minute)
	format := &models.NumberFormat{BusinessProfileID: uuid.New(), Kind: models.DocumentKindQuotation, Prefix: "QUO"}
	require.NoError(t, cache.SetNumberFormat(ctx, format, time.Minute))

	format.Prefix = "CHANGED"
	got, _ := cache.GetNumberFormat(ctx, format.BusinessProfileID, models.DocumentKindQuotation)
	assert.Equal(t, "QUO", got.Prefix)

	got.Prefix = "MUTATED"
	again, _ := cache.GetNumberFormat(ctx, format.BusinessProfileID, models.DocumentKindQuotation)
	assert.Equal(t, "QUO", again.Prefix)
}

func TestMemoryCache_Expires(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheService(time.Minute)
	format := &models.NumberFormat{BusinessProfileID: uuid.New(), Kind: models.DocumentKindInvoice}
	require.NoError(t, cache.SetNumberFormat(ctx, format, 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)
	got, _ := cache.GetNumberFormat(ctx, format.BusinessProfileID, models.DocumentKindInvoice)
	assert.Nil(t, got)
}
