package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService caches number formats between document creations.
// A miss is reported as (nil, nil).
type CacheService interface {
	GetNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error)
	SetNumberFormat(ctx context.Context, format *models.NumberFormat, ttl time.Duration) error
	DeleteNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) error
	Ping(ctx context.Context) error
}

func numberFormatKey(tenantID uuid.UUID, kind models.DocumentKind) string {
	return fmt.Sprintf("gigsters:number_format:%s:%s", tenantID.String(), kind)
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int, log *logger.Logger) CacheService {
	// accept redis://host:port as well as host:port
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Warnw("redis ping failed on initialization", "address", parsedAddr, "error", pingErr)
	} else {
		log.Debugw("redis connection established", "address", parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	data, err := r.client.Get(ctx, numberFormatKey(tenantID, kind)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var format models.NumberFormat
	if err := json.Unmarshal(data, &format); err != nil {
		return nil, err
	}
	return &format, nil
}

func (r *redisCacheService) SetNumberFormat(ctx context.Context, format *models.NumberFormat, ttl time.Duration) error {
	data, err := json.Marshal(format)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, numberFormatKey(format.BusinessProfileID, format.Kind), data, ttl).Err()
}

func (r *redisCacheService) DeleteNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) error {
	return r.client.Del(ctx, numberFormatKey(tenantID, kind)).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
