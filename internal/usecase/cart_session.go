package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// Cart sessions live in two disjoint key spaces: signed-in shoppers own
// "user:<uid>", browsers without a sign-in use "guest:<uuid>".
const (
	userCartPrefix  = "user:"
	guestCartPrefix = "guest:"
)

// UserCartID is the cart session of a signed-in user, or "" for anonymous callers.
func UserCartID(uid string) string {
	if uid == "" {
		return ""
	}
	return userCartPrefix + uid
}

// GuestCartID accepts only a browser-generated UUID. Anything else yields ""
// so a caller cannot name another shopper's cart.
func GuestCartID(token string) string {
	id, err := uuid.Parse(token)
	if err != nil {
		return ""
	}
	return guestCartPrefix + id.String()
}

// CartLocks serializes read-modify-write cycles per cart session. The cart
// and checkout flows share one instance.
type CartLocks struct {
	mutex sync.Mutex
	locks map[string]*cartLock
}

type cartLock struct {
	sync.Mutex
	waiters int
}

func NewCartLocks() *CartLocks {
	return &CartLocks{locks: make(map[string]*cartLock)}
}

func (k *CartLocks) Lock(key string) func() {
	k.mutex.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &cartLock{}
		k.locks[key] = l
	}
	l.waiters++
	k.mutex.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mutex.Lock()
		l.waiters--
		if l.waiters == 0 {
			delete(k.locks, key)
		}
		k.mutex.Unlock()
	}
}
