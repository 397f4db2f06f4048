package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/service"
)

var errBackend = errors.New("backend unavailable")

type fakeCatalog struct {
	products []entity.Product
}

func (c *fakeCatalog) ListProducts(ctx context.Context) []entity.Product {
	return append([]entity.Product{}, c.products...)
}

func (c *fakeCatalog) GetProduct(ctx context.Context, id string) *entity.Product {
	for _, p := range c.products {
		if p.ID == id {
			product := p
			return &product
		}
	}
	return nil
}

type fakeUserRepo struct {
	mutex   sync.Mutex
	users   map[string]*entity.User
	getErr  error
	saveErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.UID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	copied := *user
	r.users[user.UID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, uid string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	user, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	u := r.users[uid]
	u.FirstName, u.LastName, u.Phone = update.FirstName, update.LastName, update.Phone
	u.Country, u.Address, u.City, u.Zip = update.Country, update.Address, update.City, update.Zip
	return nil
}

func (r *fakeUserRepo) SetConnectedWallets(ctx context.Context, uid string, wallets map[string]bool) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.users[uid].ConnectedWallets = wallets
	return nil
}

func (r *fakeUserRepo) FindByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.User, int64, error) {
	if r.getErr != nil {
		return nil, 0, r.getErr
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if field == "role" && u.Role == value {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*entity.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.orders, int64(len(r.orders)), nil
}

type fakeSettingsRepo struct {
	mutex   sync.Mutex
	doc     map[string]interface{}
	getErr  error
	saveErr error
	saves   int
	// block, when set, holds Save until it is closed.
	block chan struct{}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (map[string]interface{}, bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.getErr != nil {
		return nil, false, r.getErr
	}
	return r.doc, r.doc != nil, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, doc map[string]interface{}) error {
	if r.block != nil {
		<-r.block
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	if r.doc == nil {
		r.doc = map[string]interface{}{}
	}
	for k, v := range doc {
		r.doc[k] = v
	}
	return nil
}

type fakeGateway struct {
	submitted []service.OrderSubmission
	err       error
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) Submit(ctx context.Context, sub service.OrderSubmission) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.submitted = append(g.submitted, sub)
	return "order-1", nil
}

type fakeNotifier struct {
	orders []*entity.Order
}

func (n *fakeNotifier) NotifyOrderCreated(order *entity.Order) {
	n.orders = append(n.orders, order)
}

type fakeAuth struct {
	created   map[string]string
	deleted   []string
	createErr error
	signInErr error
	uid       string
}

func (a *fakeAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if a.createErr != nil {
		return "", a.createErr
	}
	if a.created == nil {
		a.created = map[string]string{}
	}
	a.created[email] = password
	return a.uid, nil
}

func (a *fakeAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	return a.uid, nil
}

func (a *fakeAuth) DeleteUser(ctx context.Context, uid string) error {
	a.deleted = append(a.deleted, uid)
	return nil
}

func (a *fakeAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error) {
	if a.signInErr != nil {
		return "", "", a.signInErr
	}
	return a.uid, "id-token-" + a.uid, nil
}

type fakeImageStore struct {
	folder string
	err    error
}

func (s *fakeImageStore) UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.folder = folder
	return "https://storage.googleapis.com/bucket/images/" + folder + "/x.png", nil
}
