package models

// CartItem pairs a product with the quantity held in the cart. The store
// never keeps an entry with Quantity <= 0; such entries are removed instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the wire shape of a cart snapshot: product id (decimal string)
// to its entry.
type Cart map[string]CartItem
