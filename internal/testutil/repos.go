package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/repositories"

	"github.com/google/uuid"
)

var (
	_ repositories.BusinessProfileRepository = (*profileRepo)(nil)
	_ repositories.ClientRepository          = (*clientRepo)(nil)
	_ repositories.BusinessItemRepository    = (*businessItemRepo)(nil)
	_ repositories.NumberFormatRepository    = (*numberFormatRepo)(nil)
	_ repositories.CounterRepository         = (*counterRepo)(nil)
	_ repositories.DocumentRepository        = (*documentRepo)(nil)
	_ repositories.SnapshotRepository        = (*snapshotRepo)(nil)
	_ repositories.LineItemRepository        = (*lineItemRepo)(nil)
)

func (s *Store) Profiles() repositories.BusinessProfileRepository { return &profileRepo{s} }
func (s *Store) Clients() repositories.ClientRepository { return &clientRepo{s} }
func (s *Store) BusinessItems() repositories.BusinessItemRepository { return &businessItemRepo{s} }
func (s *Store) NumberFormats() repositories.NumberFormatRepository { return &numberFormatRepo{s} }
func (s *Store) Counters() repositories.CounterRepository { return &counterRepo{s} }
func (s *Store) Documents() repositories.DocumentRepository { return &documentRepo{s} }
func (s *Store) Snapshots() repositories.SnapshotRepository { return &snapshotRepo{s} }
func (s *Store) LineItems() repositories.LineItemRepository { return &lineItemRepo{s} }

type profileRepo struct{ s *Store }

func (r *profileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.BusinessProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, notFound("business profile")
	}
	cp := *p
	return &cp, nil
}

func (r *profileRepo) GetOwnerID(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	owner, ok := r.s.owners[id]
	if !ok {
		return uuid.Nil, notFound("business profile")
	}
	return owner, nil
}

type clientRepo struct{ s *Store }

func (r *clientRepo) GetByID(_ context.Context, tenantID, id uuid.UUID) (*models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.BusinessProfileID != tenantID {
		return nil, notFound("client")
	}
	cp := *c
	return &cp, nil
}

func (r *clientRepo) GetByEmail(_ context.Context, tenantID uuid.UUID, email string) (*models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.BusinessProfileID == tenantID && c.Email != nil && *c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, notFound("client")
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if client.Email != nil {
		for _, c := range r.s.clients {
			if c.BusinessProfileID == client.BusinessProfileID && c.Email != nil && *c.Email == *client.Email {
				return conflict("client", "email")
			}
		}
	}
	cp := *client
	r.s.clients[cp.ID] = &cp
	r.s.record(ctx, func() { delete(r.s.clients, cp.ID) })
	return nil
}

type businessItemRepo struct{ s *Store }

func (r *businessItemRepo) GetByID(_ context.Context, tenantID, id uuid.UUID) (*models.BusinessItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.businessItems[id]
	if !ok || item.BusinessProfileID != tenantID {
		return nil, notFound("business item")
	}
	cp := *item
	return &cp, nil
}

func (r *businessItemRepo) GetByName(_ context.Context, tenantID uuid.UUID, name string) (*models.BusinessItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item := r.s.itemByName(tenantID, name); item != nil {
		cp := *item
		return &cp, nil
	}
	return nil, notFound("business item")
}

func (r *businessItemRepo) CreateOrGet(ctx context.Context, item *models.BusinessItem) (*models.BusinessItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing := r.s.itemByName(item.BusinessProfileID, item.Name); existing != nil {
		cp := *existing
		return &cp, nil
	}
	cp := *item
	r.s.businessItems[cp.ID] = &cp
	r.s.record(ctx, func() { delete(r.s.businessItems, cp.ID) })
	out := cp
	return &out, nil
}

func (s *Store) itemByName(tenantID uuid.UUID, name string) *models.BusinessItem {
	for _, item := range s.businessItems {
		if item.BusinessProfileID == tenantID && item.Name == name {
			return item
		}
	}
	return nil
}

type numberFormatRepo struct{ s *Store }

func (r *numberFormatRepo) Get(_ context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.formats[tenantKind{tenantID, kind}]
	if !ok {
		return nil, notFound("number format")
	}
	cp := *f
	return &cp, nil
}

func (r *numberFormatRepo) Create(ctx context.Context, format *models.NumberFormat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.formats[tenantKind{format.BusinessProfileID, format.Kind}]; ok {
		return conflict("number format", "kind")
	}
	return r.s.insertFormat(ctx, format)
}

func (r *numberFormatRepo) CreateIfAbsent(ctx context.Context, format *models.NumberFormat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.formats[tenantKind{format.BusinessProfileID, format.Kind}]; ok {
		return nil
	}
	return r.s.insertFormat(ctx, format)
}

// insertFormat enforces the profile foreign key
func (s *Store) insertFormat(ctx context.Context, format *models.NumberFormat) error {
	if _, ok := s.profiles[format.BusinessProfileID]; !ok {
		return notFound("business profile")
	}
	key := tenantKind{format.BusinessProfileID, format.Kind}
	cp := *format
	s.formats[key] = &cp
	s.record(ctx, func() { delete(s.formats, key) })
	return nil
}

func (r *numberFormatRepo) Update(ctx context.Context, format *models.NumberFormat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := tenantKind{format.BusinessProfileID, format.Kind}
	prev, ok := r.s.formats[key]
	if !ok {
		return notFound("number format")
	}
	cp := *format
	cp.CreatedAt = prev.CreatedAt
	r.s.formats[key] = &cp
	r.s.record(ctx, func() { r.s.formats[key] = prev })
	return nil
}

type counterRepo struct{ s *Store }

func (r *counterRepo) GetOrCreateForUpdate(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind, initial int64) (*models.DocumentCounter, error) {
	key := tenantKind{tenantID, kind}
	if err := r.s.lockRow(ctx, "counter:"+tenantID.String()+":"+kind.String()); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.counters[key]
	if !ok {
		c = &models.DocumentCounter{BusinessProfileID: tenantID, Kind: kind, LastNumber: initial}
		r.s.counters[key] = c
		r.s.record(ctx, func() { delete(r.s.counters, key) })
	}
	cp := *c
	return &cp, nil
}

func (r *counterRepo) Update(ctx context.Context, counter *models.DocumentCounter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := tenantKind{counter.BusinessProfileID, counter.Kind}
	prev, ok := r.s.counters[key]
	if !ok {
		return notFound("counter")
	}
	cp := *counter
	r.s.counters[key] = &cp
	r.s.record(ctx, func() { r.s.counters[key] = prev })
	return nil
}

func (r *counterRepo) Get(_ context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.DocumentCounter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.counters[tenantKind{tenantID, kind}]
	if !ok {
		return nil, notFound("counter")
	}
	cp := *c
	return &cp, nil
}

type documentRepo struct{ s *Store }

func header(d *models.Document) *models.Document {
	cp := *d
	cp.BusinessSnapshot, cp.ClientSnapshot, cp.Items = nil, nil, nil
	return &cp
}

func (r *documentRepo) Create(ctx context.Context, doc *models.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, d := range r.s.documents {
		if k.kind == doc.Kind && d.BusinessProfileID == doc.BusinessProfileID && d.Number == doc.Number {
			return conflict(doc.Kind.String(), "number")
		}
	}
	key := docKey{doc.Kind, doc.ID}
	r.s.documents[key] = header(doc)
	r.s.record(ctx, func() { delete(r.s.documents, key) })
	return nil
}

func (r *documentRepo) GetByID(_ context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.documents[docKey{kind, id}]
	if !ok || d.BusinessProfileID != tenantID {
		return nil, notFound(kind.String())
	}
	return header(d), nil
}

func (r *documentRepo) GetByIDForUpdate(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	if err := r.s.lockRow(ctx, "document:"+kind.String()+":"+id.String()); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, kind, tenantID, id)
}

func (r *documentRepo) List(_ context.Context, kind models.DocumentKind, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	docs := []*models.Document{}
	for k, d := range r.s.documents {
		if k.kind == kind && d.BusinessProfileID == tenantID {
			docs = append(docs, header(d))
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return strings.Compare(docs[i].Number, docs[j].Number) > 0
		}
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if offset >= len(docs) {
		return []*models.Document{}, nil
	}
	end := min(offset+limit, len(docs))
	return docs[offset:end], nil
}

func (r *documentRepo) Update(ctx context.Context, doc *models.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := docKey{doc.Kind, doc.ID}
	prev, ok := r.s.documents[key]
	if !ok || prev.BusinessProfileID != doc.BusinessProfileID {
		return notFound(doc.Kind.String())
	}
	next := header(prev)
	next.Title, next.IssueDate, next.DueDate, next.ExpirationDate = doc.Title, doc.IssueDate, doc.DueDate, doc.ExpirationDate
	next.Currency, next.SubTotal, next.TaxRate, next.Tax = doc.Currency, doc.SubTotal, doc.TaxRate, doc.Tax
	next.Discount, next.Total, next.Notes, next.Terms, next.UpdatedAt = doc.Discount, doc.Total, doc.Notes, doc.Terms, doc.UpdatedAt
	r.s.documents[key] = next
	r.s.record(ctx, func() { r.s.documents[key] = prev })
	return nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := docKey{kind, id}
	prev, ok := r.s.documents[key]
	if !ok || prev.BusinessProfileID != tenantID {
		return notFound(kind.String())
	}
	next := header(prev)
	next.Status = status
	r.s.documents[key] = next
	r.s.record(ctx, func() { r.s.documents[key] = prev })
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := docKey{kind, id}
	doc, ok := r.s.documents[key]
	if !ok || doc.BusinessProfileID != tenantID {
		return notFound(kind.String())
	}
	business, client, items := r.s.businessSnaps[key], r.s.clientSnaps[key], r.s.lineItems[key]
	delete(r.s.documents, key)
	delete(r.s.businessSnaps, key)
	delete(r.s.clientSnaps, key)
	delete(r.s.lineItems, key)
	r.s.record(ctx, func() {
		r.s.documents[key] = doc
		if business != nil {
			r.s.businessSnaps[key] = business
		}
		if client != nil {
			r.s.clientSnaps[key] = client
		}
		if items != nil {
			r.s.lineItems[key] = items
		}
	})
	return nil
}

type snapshotRepo struct{ s *Store }

func (r *snapshotRepo) CreateBusinessSnapshot(ctx context.Context, kind models.DocumentKind, snap *models.BusinessSnapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := docKey{kind, snap.DocumentID}
	if _, ok := r.s.businessSnaps[key]; ok {
		return conflict("business snapshot", "document_id")
	}
	cp := *snap
	r.s.businessSnaps[key] = &cp
	r.s.record(ctx, func() { delete(r.s.businessSnaps, key) })
	return nil
}

func (r *snapshotRepo) CreateClientSnapshot(ctx context.Context, kind models.DocumentKind, snap *models.ClientSnapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := docKey{kind, snap.DocumentID}
	if _, ok := r.s.clientSnaps[key]; ok {
		return conflict("client snapshot", "document_id")
	}
	cp := *snap
	r.s.clientSnaps[key] = &cp
	r.s.record(ctx, func() { delete(r.s.clientSnaps, key) })
	return nil
}

func (r *snapshotRepo) GetBusinessSnapshot(_ context.Context, kind models.DocumentKind, documentID uuid.UUID) (*models.BusinessSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap, ok := r.s.businessSnaps[docKey{kind, documentID}]
	if !ok {
		return nil, notFound("business snapshot")
	}
	cp := *snap
	return &cp, nil
}

func (r *snapshotRepo) GetClientSnapshot(_ context.Context, kind models.DocumentKind, documentID uuid.UUID) (*models.ClientSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap, ok := r.s.clientSnaps[docKey{kind, documentID}]
	if !ok {
		return nil, notFound("client snapshot")
	}
	cp := *snap
	return &cp, nil
}

type lineItemRepo struct{ s *Store }

func (r *lineItemRepo) CreateBatch(ctx context.Context, kind models.DocumentKind, items []*models.LineItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failLineItems != nil {
		return r.s.failLineItems
	}
	for _, item := range items {
		key := docKey{kind, item.DocumentID}
		prev := r.s.lineItems[key]
		cp := *item
		r.s.lineItems[key] = append(append([]*models.LineItem{}, prev...), &cp)
		r.s.record(ctx, func() { r.s.lineItems[key] = prev })
	}
	return nil
}

func (r *lineItemRepo) ListByDocument(_ context.Context, kind models.DocumentKind, documentID uuid.UUID) ([]*models.LineItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := r.s.lineItems[docKey{kind, documentID}]
	items := make([]*models.LineItem, 0, len(stored))
	for _, item := range stored {
		cp := *item
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

func (r *lineItemRepo) DeleteByDocument(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := docKey{kind, documentID}
	prev, ok := r.s.lineItems[key]
	delete(r.s.lineItems, key)
	if ok {
		r.s.record(ctx, func() { r.s.lineItems[key] = prev })
	}
	return nil
}
