package models

type PaymentMethod struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"isDefault"`
}
