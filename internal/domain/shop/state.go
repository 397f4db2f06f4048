// Package shop holds the per-session storefront state: catalog, cart,
// signed-in user and site configuration. State is a value; mutators return
// a new State and never modify the receiver.
package shop

import (
	"luxestore/internal/domain/entity"
)

type State struct {
	Products []entity.Product  `json:"products"`
	Cart     entity.Cart       `json:"cart"`
	User     *entity.User      `json:"user"`
	Config   entity.SiteConfig `json:"config"`
}

func (s State) WithProducts(products []entity.Product) State {
	s.Products = append([]entity.Product{}, products...)
	return s
}

func (s State) WithCart(cart entity.Cart) State {
	s.Cart = entity.NewCart(cart.Items...)
	return s
}

func (s State) WithUser(user *entity.User) State {
	if user == nil {
		s.User = nil
		return s
	}
	copied := *user
	s.User = &copied
	return s
}

func (s State) WithConfig(cfg entity.SiteConfig) State {
	s.Config = cfg.Clone()
	return s
}

func (s State) AddToCart(product entity.Product, size, color string) State {
	s.Cart = s.Cart.Add(product, size, color)
	return s
}

// CartTotal is derived on every call.
func (s State) CartTotal() float64 {
	return s.Cart.Total()
}

func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// FindProduct looks a product up in the loaded catalog.
func (s State) FindProduct(id string) (entity.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}
