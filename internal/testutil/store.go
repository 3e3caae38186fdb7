// Package testutil provides an in-memory implementation of the storage layer for service tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
)

type tenantKind struct {
	tenantID uuid.UUID
	kind     models.DocumentKind
}

type docKey struct {
	kind models.DocumentKind
	id   uuid.UUID
}

// Store holds every table in memory. WithTx gives transactions an undo log and
// blocking row locks, so rolled back work disappears and locked rows serialize callers.
// Reads are not isolated from other open transactions.
type Store struct {
	mu       sync.Mutex
	rowLocks map[string]*sync.Mutex

	profiles      map[uuid.UUID]*models.BusinessProfile
	owners        map[uuid.UUID]uuid.UUID
	clients       map[uuid.UUID]*models.Client
	businessItems map[uuid.UUID]*models.BusinessItem
	formats       map[tenantKind]*models.NumberFormat
	counters      map[tenantKind]*models.DocumentCounter
	documents     map[docKey]*models.Document
	businessSnaps map[docKey]*models.BusinessSnapshot
	clientSnaps   map[docKey]*models.ClientSnapshot
	lineItems     map[docKey][]*models.LineItem

	failLineItems error
}

func NewStore() *Store {
	return &Store{
		rowLocks:      map[string]*sync.Mutex{},
		profiles:      map[uuid.UUID]*models.BusinessProfile{},
		owners:        map[uuid.UUID]uuid.UUID{},
		clients:       map[uuid.UUID]*models.Client{},
		businessItems: map[uuid.UUID]*models.BusinessItem{},
		formats:       map[tenantKind]*models.NumberFormat{},
		counters:      map[tenantKind]*models.DocumentCounter{},
		documents:     map[docKey]*models.Document{},
		businessSnaps: map[docKey]*models.BusinessSnapshot{},
		clientSnaps:   map[docKey]*models.ClientSnapshot{},
		lineItems:     map[docKey][]*models.LineItem{},
	}
}

type txKey struct{}

type memTx struct {
	undo []func()
	held map[string]*sync.Mutex
}

func txFrom(ctx context.Context) *memTx {
	t, _ := ctx.Value(txKey{}).(*memTx)
	return t
}

// WithTx runs fn in a transaction; a nested call joins the outer one
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	t := &memTx{held: map[string]*sync.Mutex{}}
	committed := false
	defer func() {
		if !committed {
			s.rollback(t)
		}
		for _, m := range t.held {
			m.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) rollback(t *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

// record registers undo for the surrounding transaction. Callers hold s.mu.
func (s *Store) record(ctx context.Context, undo func()) {
	if t := txFrom(ctx); t != nil {
		t.undo = append(t.undo, undo)
	}
}

// lockRow blocks until the transaction in ctx owns the row named key
func (s *Store) lockRow(ctx context.Context, key string) error {
	t := txFrom(ctx)
	if t == nil {
		return ierr.NewError("row lock requires a transaction").Mark(ierr.ErrSystem)
	}
	if _, ok := t.held[key]; ok {
		return nil
	}

	s.mu.Lock()
	m, ok := s.rowLocks[key]
	if !ok {
		m = &sync.Mutex{}
		s.rowLocks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	t.held[key] = m
	return nil
}

func notFound(entity string) error {
	return ierr.NewError("record not found").
		WithHintf("%s not found", entity).
		Mark(ierr.ErrNotFound)
}

func conflict(entity, field string) error {
	return ierr.NewError("unique violation").
		WithHintf("%s with this %s already exists", entity, field).
		WithReportableDetails(map[string]any{"field": field}).
		Mark(ierr.ErrAlreadyExists)
}

// AddProfile stores a copy of profile and records owner as its user
func (s *Store) AddProfile(profile *models.BusinessProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *profile
	s.profiles[p.ID] = &p
	s.owners[p.ID] = p.UserID
}

// AddClient stores a copy of client
func (s *Store) AddClient(client *models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *client
	s.clients[c.ID] = &c
}

// AddBusinessItem stores a copy of item
func (s *Store) AddBusinessItem(item *models.BusinessItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := *item
	s.businessItems[i.ID] = &i
}

// SetDocumentStatus overwrites a stored status, bypassing the transition rules
func (s *Store) SetDocumentStatus(kind models.DocumentKind, id uuid.UUID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.documents[docKey{kind, id}]; ok {
		d.Status = status
	}
}

// FailLineItemBatch makes every following line item insert fail with err
func (s *Store) FailLineItemBatch(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLineItems = err
}

// Counter returns a copy of the stored counter, or nil
func (s *Store) Counter(tenantID uuid.UUID, kind models.DocumentKind) *models.DocumentCounter {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[tenantKind{tenantID, kind}]
	if !ok {
		return nil
	}
	cp := *c
	return &cp
}

// Count reports the number of rows in the named table
func (s *Store) Count(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch table {
	case "clients":
		return len(s.clients)
	case "business_items":
		return len(s.businessItems)
	case "number_formats":
		return len(s.formats)
	case "counters":
		return len(s.counters)
	case "invoices", "quotations":
		return s.countDocuments(models.DocumentKind(table[:len(table)-1]))
	case "business_snapshots":
		return len(s.businessSnaps)
	case "client_snapshots":
		return len(s.clientSnaps)
	case "line_items":
		n := 0
		for _, items := range s.lineItems {
			n += len(items)
		}
		return n
	}
	panic(fmt.Sprintf("testutil: unknown table %q", table))
}

func (s *Store) countDocuments(kind models.DocumentKind) int {
	n := 0
	for k := range s.documents {
		if k.kind == kind {
			n++
		}
	}
	return n
}

// UpdateProfile mutates the stored profile in place, as a later profile edit would
func (s *Store) UpdateProfile(id uuid.UUID, mutate func(*models.BusinessProfile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[id]; ok {
		mutate(p)
	}
}

// UpdateClient mutates the stored client in place
func (s *Store) UpdateClient(id uuid.UUID, mutate func(*models.Client)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.clients[id]; ok {
		mutate(c)
	}
}
