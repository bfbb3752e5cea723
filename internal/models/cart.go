package models

// CartItem est un instantané du produit au moment de l'ajout, plus la quantité.
// L'instantané n'est jamais réécrit par les ajouts suivants.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// CartTotals est dérivé du panier à chaque lecture, jamais stocké.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
