package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api"
	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/adapter/repository"
	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/service"
	"luxestore/internal/usecase"
)

var errDown = errors.New("backend down")

type stubVerifier struct{}

// VerifyToken accepts "token-<uid>".
func (stubVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if uid, ok := strings.CutPrefix(token, "token-"); ok && uid != "" {
		return uid, nil
	}
	return "", errors.New("invalid token")
}

// stubSignIn signs in the stub users with the password "secret".
type stubSignIn struct {
	stubVerifier
	users *stubUsers
}

func (a stubSignIn) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "", errors.New("registration disabled")
}

func (a stubSignIn) DeleteUser(ctx context.Context, uid string) error { return nil }

func (a stubSignIn) SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error) {
	a.users.mutex.Lock()
	defer a.users.mutex.Unlock()
	for uid, user := range a.users.users {
		if user.Email == email && password == "secret" {
			return uid, "token-" + uid, nil
		}
	}
	return "", "", errors.New("invalid credentials")
}

type stubCatalog struct {
	products []entity.Product
}

func (c stubCatalog) ListProducts(ctx context.Context) []entity.Product {
	return append([]entity.Product{}, c.products...)
}

func (c stubCatalog) GetProduct(ctx context.Context, id string) *entity.Product {
	for _, p := range c.products {
		if p.ID == id {
			product := p
			return &product
		}
	}
	return nil
}

type stubUsers struct {
	mutex sync.Mutex
	users map[string]*entity.User
}

func (r *stubUsers) Create(ctx context.Context, user *entity.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.users[user.UID] = user
	return nil
}

func (r *stubUsers) GetByID(ctx context.Context, uid string) (*entity.User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	user, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *stubUsers) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	u := r.users[uid]
	u.FirstName, u.LastName, u.Phone = update.FirstName, update.LastName, update.Phone
	u.Country, u.Address, u.City, u.Zip = update.Country, update.Address, update.City, update.Zip
	return nil
}

func (r *stubUsers) SetConnectedWallets(ctx context.Context, uid string, wallets map[string]bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.users[uid].ConnectedWallets = wallets
	return nil
}

func (r *stubUsers) FindByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.User, int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if field == "role" && u.Role == value {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

type stubOrders struct {
	mutex  sync.Mutex
	orders []*entity.Order
}

func (r *stubOrders) Create(ctx context.Context, order *entity.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.orders = append(r.orders, order)
	return nil
}

func (r *stubOrders) ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := []*entity.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrders) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.orders, int64(len(r.orders)), nil
}

type stubSettings struct {
	mutex  sync.Mutex
	doc    map[string]interface{}
	getErr error
}

func (r *stubSettings) Get(ctx context.Context) (map[string]interface{}, bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.getErr != nil {
		return nil, false, r.getErr
	}
	return r.doc, r.doc != nil, nil
}

func (r *stubSettings) Save(ctx context.Context, doc map[string]interface{}) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.doc == nil {
		r.doc = map[string]interface{}{}
	}
	for k, v := range doc {
		r.doc[k] = v
	}
	return nil
}

type stubProducts struct{}

func (stubProducts) Create(ctx context.Context, product *entity.Product) error { return nil }

func (stubProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return nil, nil
}

func (stubProducts) List(ctx context.Context) ([]*entity.Product, error) { return nil, nil }

// storefront wires the real use cases over in-memory stores behind the
// same routes and middleware the server uses.
type storefront struct {
	e        *echo.Echo
	orders   *stubOrders
	settings *stubSettings
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()

	catalog := stubCatalog{products: []entity.Product{
		{ID: "p1", Name: "Leather Tote", Price: 100, Category: "Bags"},
		{ID: "p2", Name: "Chelsea Boot", Price: 50, Category: "Shoes"},
	}}
	users := &stubUsers{users: map[string]*entity.User{
		"u1":    {UID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: entity.RoleCustomer},
		"admin": {UID: "admin", Email: "admin@example.com", Role: entity.RoleAdmin},
	}}
	orders := &stubOrders{}
	settingsRepo := &stubSettings{}
	carts := repository.NewMemoryCartRepository()

	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, nil)
	shopHandler := NewShopHandler(usecase.NewShopUseCase(catalog, "stub", carts, users, settingsUseCase, nil))
	locks := usecase.NewCartLocks()
	cartUseCase := usecase.NewCartUseCase(catalog, carts, locks, nil)
	authHandler := NewAuthHandler(usecase.NewAuthUseCase(users, stubSignIn{users: users}), cartUseCase)
	cartHandler := NewCartHandler(cartUseCase)
	checkoutHandler := NewCheckoutHandler(usecase.NewCheckoutUseCase(carts, locks, users, service.NewDocumentOrderGateway(orders), nil, nil))
	accountHandler := NewAccountHandler(usecase.NewAccountUseCase(users, orders, settingsUseCase))
	settingsHandler := NewSettingsHandler(settingsUseCase)
	adminHandler := NewAdminHandler(usecase.NewAdminUseCase(orders, users), usecase.NewProductUseCase(stubProducts{}, nil))

	e := echo.New()
	e.Validator = api.NewValidator()

	authMiddleware := middleware.NewAuthMiddleware(stubVerifier{})
	adminMiddleware := middleware.NewAdminMiddleware(users)

	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/state", shopHandler.GetState, authMiddleware.Optional)
	e.GET("/v1/products/:id", shopHandler.GetProduct)
	e.GET("/v1/cart", cartHandler.GetCart, authMiddleware.Optional)
	e.POST("/v1/cart/items", cartHandler.AddItem, authMiddleware.Optional)
	e.POST("/v1/checkout", checkoutHandler.PlaceOrder, authMiddleware.Optional)
	e.GET("/v1/account/orders", accountHandler.ListOrders, authMiddleware.Authenticate)
	e.POST("/v1/account/wallets/:provider/toggle", accountHandler.ToggleWallet, authMiddleware.Authenticate)
	e.GET("/v1/settings", settingsHandler.GetPublic)

	admin := e.Group("/v1/admin", authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.GET("/settings", settingsHandler.Get)
	admin.PATCH("/settings/draft", settingsHandler.PatchDraft)
	admin.POST("/settings/draft/save", settingsHandler.SaveDraft)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.POST("/uploads", adminHandler.UploadImage)
	admin.GET("/orders", adminHandler.ListOrders)

	return &storefront{e: e, orders: orders, settings: settingsRepo}
}

// do sends a JSON request; uid and cart may be empty.
func (s *storefront) do(method, path, body, uid, cart string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if uid != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer token-"+uid)
	}
	if cart != "" {
		req.Header.Set(CartHeader, cart)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}
