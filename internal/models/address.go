package models

type Address struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	IsDefault bool   `json:"isDefault"`
}
