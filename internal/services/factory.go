package services

import (
	"time"

	"github.com/gigsters-app/gigsters/internal/caching"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/repositories"
	"github.com/gigsters-app/gigsters/pkg/database"
)

// ServiceParams holds the collaborators shared by the document services
type ServiceParams struct {
	Logger *logger.Logger
	DB     database.TxManager
	Cache  caching.CacheService

	// FormatTTL is how long a number format stays cached
	FormatTTL time.Duration
	// Now is the clock; time.Now when nil
	Now func() time.Time

	ProfileRepo      repositories.BusinessProfileRepository
	ClientRepo       repositories.ClientRepository
	BusinessItemRepo repositories.BusinessItemRepository
	NumberFormatRepo repositories.NumberFormatRepository
	CounterRepo      repositories.CounterRepository
	DocumentRepo     repositories.DocumentRepository
	SnapshotRepo     repositories.SnapshotRepository
	LineItemRepo     repositories.LineItemRepository
}

func (p ServiceParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
