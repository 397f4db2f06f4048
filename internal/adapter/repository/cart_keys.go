package repository

// CartKeyPrefix namespaces cart mirror blobs; the suffix is the cart session id.
const CartKeyPrefix = "luxeCart:"

func cartKey(cartID string) string {
	return CartKeyPrefix + cartID
}
