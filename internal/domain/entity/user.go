package entity

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is the profile document stored under users/{uid}. Role is fixed to
// customer at signup; elevation to admin happens outside this service.
type User struct {
	UID              string          `json:"uid" firestore:"-"`
	FirstName        string          `json:"first_name" firestore:"firstName"`
	LastName         string          `json:"last_name" firestore:"lastName"`
	Email            string          `json:"email" firestore:"email"`
	Role             string          `json:"role" firestore:"role"`
	Phone            string          `json:"phone,omitempty" firestore:"phone,omitempty"`
	Country          string          `json:"country,omitempty" firestore:"country,omitempty"`
	Address          string          `json:"address,omitempty" firestore:"address,omitempty"`
	City             string          `json:"city,omitempty" firestore:"city,omitempty"`
	Zip              string          `json:"zip,omitempty" firestore:"zip,omitempty"`
	ConnectedWallets map[string]bool `json:"connected_wallets,omitempty" firestore:"connectedWallets,omitempty"`
	CreatedAt        time.Time       `json:"created_at" firestore:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// HomeRoute is where a signed-in user lands.
func (u *User) HomeRoute() string {
	switch {
	case u == nil:
		return "/"
	case u.IsAdmin():
		return "/admin"
	default:
		return "/account"
	}
}

// ProfileUpdate holds the fields a user may edit on their own profile.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Country   string
	Address   string
	City      string
	Zip       string
}

func (p ProfileUpdate) Fields() map[string]interface{} {
	return map[string]interface{}{
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"phone":     p.Phone,
		"country":   p.Country,
		"address":   p.Address,
		"city":      p.City,
		"zip":       p.Zip,
	}
}
