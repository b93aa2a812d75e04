package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// memDB almacén en memoria compartido por los repos fake. El mutex del
// txRunner serializa las "transacciones" igual que el SELECT FOR UPDATE
// serializa el count+insert en PostgreSQL.
type memDB struct {
	mu            sync.Mutex
	stores        map[string]*entity.Store
	products      map[string]*entity.Product
	profiles      map[string]*entity.Profile
	sales         []*entity.Sale
	notifications []*entity.Notification
}

func newMemDB() *memDB {
	return &memDB{
		stores:   make(map[string]*entity.Store),
		products: make(map[string]*entity.Product),
		profiles: make(map[string]*entity.Profile),
	}
}

// ── StoreRepository fake ─────────────────────────────────────────────────────

type fakeStoreRepo struct{ db *memDB }

func (r *fakeStoreRepo) Create(s *entity.Store) error {
	cp := *s
	r.db.stores[s.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	if s, ok := r.db.stores[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeStoreRepo) GetBySlug(slug string) (*entity.Store, error) {
	for _, s := range r.db.stores {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) GetForUpdate(id string) (*entity.Store, error) {
	return r.GetByID(id)
}

func (r *fakeStoreRepo) UpdatePlan(id, plan string, planLimit int) (*entity.Store, error) {
	s, ok := r.db.stores[id]
	if !ok {
		return nil, nil
	}
	s.Plan = plan
	s.PlanLimit = planLimit
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (r *fakeStoreRepo) UpdateName(id, name string) error {
	if s, ok := r.db.stores[id]; ok {
		s.Name = name
	}
	return nil
}

func (r *fakeStoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// ── ProductRepository fake ───────────────────────────────────────────────────

type fakeProductRepo struct{ db *memDB }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.db.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, quantity int) error {
	if p, ok := r.db.products[id]; ok {
		p.StockQuantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.db.products {
		if p.StoreID == storeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountByStore(storeID string) (int, error) {
	count := 0
	for _, p := range r.db.products {
		if p.StoreID == storeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.db.products, id)
	return nil
}

// ── SaleRepository fake ──────────────────────────────────────────────────────

type fakeSaleRepo struct{ db *memDB }

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.db.sales = append(r.db.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.db.sales {
		if s.StoreID == storeID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByStoreAndDate(storeID string, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.db.sales {
		if s.StoreID == storeID && !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── NotificationRepository fake ──────────────────────────────────────────────

type fakeNotificationRepo struct{ db *memDB }

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.db.notifications = append(r.db.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.db.notifications {
		if n.StoreID == storeID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(id, storeID string) error {
	for _, n := range r.db.notifications {
		if n.ID == id && n.StoreID == storeID {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── ProfileRepository fake ───────────────────────────────────────────────────

type fakeProfileRepo struct{ db *memDB }

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	for _, other := range r.db.profiles {
		if other.Email == p.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *p
	r.db.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) {
	if p, ok := r.db.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	for _, p := range r.db.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Update(p *entity.Profile) error {
	cp := *p
	r.db.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateRole(id, role string) error {
	if p, ok := r.db.profiles[id]; ok {
		p.Role = role
	}
	return nil
}

func (r *fakeProfileRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range r.db.profiles {
		if p.StoreID == storeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── AnalyticsRepository fake ─────────────────────────────────────────────────

// fakeAnalyticsRepo deriva las agregaciones del estado en memoria, igual que
// las consultas SQL lo hacen del estado de las tablas.
type fakeAnalyticsRepo struct{ db *memDB }

func (r *fakeAnalyticsRepo) GetStoreStats(storeID string, lowStockThreshold int) (*repository.StoreStats, error) {
	stats := &repository.StoreStats{RevenueToday: decimal.Zero}
	for _, p := range r.db.products {
		if p.StoreID != storeID {
			continue
		}
		stats.TotalProducts++
		if p.StockQuantity <= lowStockThreshold {
			stats.LowStockCount++
		}
	}
	today := time.Now().Truncate(24 * time.Hour)
	for _, s := range r.db.sales {
		if s.StoreID == storeID && !s.SaleDate.Before(today) {
			stats.SalesToday++
			stats.RevenueToday = stats.RevenueToday.Add(s.Total())
		}
	}
	return stats, nil
}

func (r *fakeAnalyticsRepo) ListStoresWithCounts(limit, offset int) ([]*repository.AdminStoreRow, error) {
	var out []*repository.AdminStoreRow
	for _, s := range r.db.stores {
		row := &repository.AdminStoreRow{
			StoreID:   s.ID,
			StoreName: s.Name,
			Slug:      s.Slug,
			Plan:      s.Plan,
			PlanLimit: s.PlanLimit,
		}
		for _, p := range r.db.products {
			if p.StoreID == s.ID {
				row.ProductCount++
			}
		}
		if owner, ok := r.db.profiles[s.OwnerID]; ok {
			row.OwnerEmail = owner.Email
		}
		out = append(out, row)
	}
	return out, nil
}

// ── TxRunner fake ────────────────────────────────────────────────────────────

// fakeTxRunner serializa las transacciones con un mutex: dos Run concurrentes
// nunca se intercalan, que es la garantía que da el row lock en producción.
type fakeTxRunner struct{ db *memDB }

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	return fn(
		&fakeStoreRepo{db: t.db},
		&fakeProductRepo{db: t.db},
		&fakeSaleRepo{db: t.db},
		&fakeNotificationRepo{db: t.db},
	)
}
