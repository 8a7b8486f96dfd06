package service

import (
	"context"
	"strconv"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type fakeUsers struct {
	byName map[string]*domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: make(map[string]*domain.User)}
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.byName[username]
	return ok, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.byName {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	u.ID = "u" + strconv.Itoa(len(f.byName)+1)
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsers) ReplaceRoles(_ context.Context, username string, roles []domain.AppRole) error {
	u, ok := f.byName[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Roles = roles
	return nil
}

type fakeRoles struct {
	known map[domain.AppRole]*domain.Role
}

func newFakeRoles(names ...domain.AppRole) *fakeRoles {
	f := &fakeRoles{known: make(map[domain.AppRole]*domain.Role)}
	for _, n := range names {
		f.known[n] = &domain.Role{ID: string(n), Name: n}
	}
	return f
}

func (f *fakeRoles) FindByName(_ context.Context, name domain.AppRole) (*domain.Role, error) {
	r, ok := f.known[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return r, nil
}

func (f *fakeRoles) Create(_ context.Context, r *domain.Role) (*domain.Role, error) {
	f.known[r.Name] = r
	return r, nil
}

type fakeCategories struct {
	byID map[string]*domain.Category
	seq  int
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{byID: make(map[string]*domain.Category)}
}

func (f *fakeCategories) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategories) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (f *fakeCategories) List(_ context.Context, _ ports.PageRequest) (*ports.CategoryPage, error) {
	page := &ports.CategoryPage{TotalElements: int64(len(f.byID))}
	for _, c := range f.byID {
		page.Content = append(page.Content, *c)
	}
	return page, nil
}

func (f *fakeCategories) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	f.seq++
	c.ID = "c" + strconv.Itoa(f.seq)
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCategories) Update(_ context.Context, c *domain.Category) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeProducts struct {
	byID map[string]*domain.Product
	seq  int
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{byID: make(map[string]*domain.Product)}
}

func (f *fakeProducts) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProducts) FindByName(_ context.Context, categoryID, name string) (*domain.Product, error) {
	for _, p := range f.byID {
		if p.CategoryID == categoryID && p.Name == name {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeProducts) List(_ context.Context, filter ports.ProductFilter, _ ports.PageRequest) (*ports.ProductPage, error) {
	page := &ports.ProductPage{}
	for _, p := range f.byID {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Seller != "" && p.Seller != filter.Seller {
			continue
		}
		page.Content = append(page.Content, *p)
	}
	page.TotalElements = int64(len(page.Content))
	return page, nil
}

func (f *fakeProducts) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.seq++
	p.ID = "p" + strconv.Itoa(f.seq)
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, p *domain.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCarts struct {
	byOwner map[string]*domain.Cart
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{byOwner: make(map[string]*domain.Cart)}
}

func (f *fakeCarts) FindByOwner(_ context.Context, owner string) (*domain.Cart, error) {
	c, ok := f.byOwner[owner]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeCarts) Save(_ context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if cart.ID == "" {
		cart.ID = "cart-" + cart.Owner
	}
	f.byOwner[cart.Owner] = cart
	return cart, nil
}

type fakeAddresses struct {
	byID map[string]*domain.Address
	seq  int
}

func newFakeAddresses() *fakeAddresses {
	return &fakeAddresses{byID: make(map[string]*domain.Address)}
}

func (f *fakeAddresses) FindByID(_ context.Context, id string) (*domain.Address, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}

func (f *fakeAddresses) ListAll(_ context.Context) ([]domain.Address, error) {
	out := make([]domain.Address, 0, len(f.byID))
	for _, a := range f.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAddresses) ListByOwner(_ context.Context, owner string) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range f.byID {
		if a.Owner == owner {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAddresses) Create(_ context.Context, a *domain.Address) (*domain.Address, error) {
	f.seq++
	a.ID = "a" + strconv.Itoa(f.seq)
	f.byID[a.ID] = a
	return a, nil
}

func (f *fakeAddresses) Update(_ context.Context, a *domain.Address) error {
	if _, ok := f.byID[a.ID]; !ok {
		return domain.ErrAddressNotFound
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAddresses) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrAddressNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCache records invalidations; Get always misses.
type fakeCache struct {
	invalidations int
}

func (f *fakeCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (f *fakeCache) Set(context.Context, string, []byte)        {}
func (f *fakeCache) Invalidate(context.Context)                 { f.invalidations++ }
