package models

import "strconv"

type Product struct {
	ID       string  `json:"id"`
	Image    string  `json:"image"`
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	Rating   float64 `json:"rating"`
	Badge    string  `json:"badge,omitempty"`
	Category string  `json:"category,omitempty"`
}

// PriceValue parse le prix décimal ("49.99") en float64.
// Un prix invalide ou négatif vaut 0.
func (p Product) PriceValue() float64 {
	v, err := strconv.ParseFloat(p.Price, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
