package models

import "time"

type Order struct {
	ID          string        `json:"id"`
	Reference   string        `json:"reference"`
	UserID      string        `json:"-"`
	Items       []CartItem    `json:"items"`
	Subtotal    float64       `json:"subtotal"`
	Shipping    float64       `json:"shipping"`
	Tax         float64       `json:"tax"`
	AmountTotal float64       `json:"amount_total"`
	Status      string        `json:"status"`
	Address     Address       `json:"address"`
	Payment     PaymentMethod `json:"payment"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TrackingStep est une étape de la timeline de suivi d'une commande.
type TrackingStep struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	Completed   bool      `json:"completed"`
}
