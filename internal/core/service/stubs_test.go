package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.FirstName, u.LastName, u.Phone = in.FirstName, in.LastName, in.Phone
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) AddToWishlist(_ context.Context, id, productID string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	for _, p := range u.Wishlist {
		if p == productID {
			return nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
	return nil
}

func (r *stubUserRepo) RemoveFromWishlist(_ context.Context, id, productID string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Wishlist[:0]
	for _, p := range u.Wishlist {
		if p != productID {
			kept = append(kept, p)
		}
	}
	u.Wishlist = kept
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return r.collect(func(*domain.User) bool { return true }, 0), nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	return r.collect(func(u *domain.User) bool { return u.Role == role }, 0), nil
}

func (r *stubUserRepo) ListRecent(_ context.Context, limit int) ([]domain.User, error) {
	return r.collect(func(*domain.User) bool { return true }, limit), nil
}

func (r *stubUserRepo) collect(keep func(*domain.User) bool, limit int) []domain.User {
	var users []domain.User
	for _, u := range r.users {
		if keep(u) {
			users = append(users, *cloneUser(u))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users
}

func (r *stubUserRepo) UpdateCustomer(_ context.Context, id string, in ports.UpdateCustomerInput) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.FirstName, u.LastName, u.Email, u.Phone, u.Status = in.FirstName, in.LastName, in.Email, in.Phone, in.Status
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if inWindow(u.CreatedAt, start, end) {
			n++
		}
	}
	return n, nil
}

type stubOrderRepo struct {
	orders []domain.Order
	err    error
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	created := *o
	created.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			clone := o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	return append([]domain.Order(nil), r.orders...), nil
}

func (r *stubOrderRepo) ListRecent(_ context.Context, limit int) ([]domain.Order, error) {
	if len(r.orders) > limit {
		return append([]domain.Order(nil), r.orders[:limit]...), nil
	}
	return append([]domain.Order(nil), r.orders...), nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			clone := r.orders[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) CountCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, o := range r.orders {
		if inWindow(o.CreatedAt, start, end) {
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) SumCompletedBetween(_ context.Context, start, end time.Time) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var total float64
	for _, o := range r.orders {
		if o.Status == domain.OrderCompleted && inWindow(o.CreatedAt, start, end) {
			total += o.TotalAmount
		}
	}
	return total, nil
}

type stubProductRepo struct {
	products []domain.Product
	byCat    []ports.CategoryCount
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	created := *p
	created.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	r.products = append(r.products, created)
	return &created, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindActiveByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ProductActive {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, p *domain.Product) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			updated := *p
			updated.ID = id
			updated.CreatedAt = r.products[i].CreatedAt
			r.products[i] = updated
			return &updated, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *stubProductRepo) ListActive(_ context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Status == domain.ProductActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubProductRepo) CountCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, p := range r.products {
		if inWindow(p.CreatedAt, start, end) {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) CountByCategory(_ context.Context, limit int64) ([]ports.CategoryCount, error) {
	if int64(len(r.byCat)) > limit {
		return r.byCat[:limit], nil
	}
	return r.byCat, nil
}

func inWindow(ts, start, end time.Time) bool {
	return !ts.Before(start) && !ts.After(end)
}
