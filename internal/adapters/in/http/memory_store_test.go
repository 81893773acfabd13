package http_test

import (
	"context"
	"math"
	"slices"
	"strings"
	"sync"

	"artisan/internal/core/application/usecases/commands"
	"artisan/internal/core/application/usecases/queries"
	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/core/domain/model/order"
	"artisan/internal/core/ports"
	"artisan/internal/pkg/errs"
)

// memoryStore is an in-process stand-in for the orders table. It serves the
// real command handlers through ports.OrderRepository and the query side
// through the fakes below. Reads return copies, like a database would.
type memoryStore struct {
	mu       sync.Mutex
	orders   map[string]*order.Order
	failWith error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{orders: make(map[string]*order.Order)}
}

func cloneOrder(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(o.ID(), o.ClientName(), o.Phone(), o.Details(), o.Price(), o.Status(), o.CreatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func (s *memoryStore) Add(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.orders[o.ID().String()] = cloneOrder(o)
	return nil
}

func (s *memoryStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	o, ok := s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return cloneOrder(o), nil
}

func (s *memoryStore) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.Get(ctx, id)
}

func (s *memoryStore) Update(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.orders[o.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("orderID", o.ID().String())
	}
	s.orders[o.ID().String()] = cloneOrder(o)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id kernel.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	if _, ok := s.orders[id.String()]; !ok {
		return 0, nil
	}
	delete(s.orders, id.String())
	return 1, nil
}

func (s *memoryStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// sorted returns copies of the orders accepted by keep, newest first.
func (s *memoryStore) sorted(keep func(*order.Order) bool, limit int) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	result := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			result = append(result, cloneOrder(o))
		}
	}
	slices.SortFunc(result, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type memoryUoW struct {
	store *memoryStore
}

func (u memoryUoW) Begin(context.Context) error    { return nil }
func (u memoryUoW) Commit(context.Context) error   { return nil }
func (u memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) OrderRepository() ports.OrderRepository {
	return u.store
}

type memoryUoWFactory struct {
	store *memoryStore
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return memoryUoW(f)
}

type getOrderFake struct{ store *memoryStore }

func (f getOrderFake) Handle(ctx context.Context, q queries.GetOrderQuery) (*order.Order, error) {
	return f.store.Get(ctx, q.OrderID())
}

type getAllOrdersFake struct{ store *memoryStore }

func (f getAllOrdersFake) Handle(_ context.Context, _ queries.GetAllOrdersQuery) ([]*order.Order, error) {
	return f.store.sorted(func(*order.Order) bool { return true }, queries.MaxListedOrders)
}

type searchOrdersFake struct{ store *memoryStore }

func (f searchOrdersFake) Handle(_ context.Context, q queries.SearchOrdersQuery) ([]*order.Order, error) {
	if q.Text() == "" {
		return []*order.Order{}, nil
	}
	needle := strings.ToLower(q.Text())
	return f.store.sorted(func(o *order.Order) bool {
		return strings.Contains(strings.ToLower(o.ClientName()), needle)
	}, queries.MaxSearchResults)
}

type orderStatsFake struct{ store *memoryStore }

func (f orderStatsFake) Handle(_ context.Context, _ queries.GetOrderStatsQuery) (queries.OrderStats, error) {
	all, err := f.store.sorted(func(*order.Order) bool { return true }, math.MaxInt)
	if err != nil {
		return queries.OrderStats{}, err
	}

	stats := queries.OrderStats{ByStatus: map[order.Status]int64{}}
	for _, s := range order.Statuses() {
		stats.ByStatus[s] = 0
	}
	for _, o := range all {
		stats.Total++
		stats.ByStatus[o.Status()]++
	}
	return stats, nil
}
