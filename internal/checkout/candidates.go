package checkout

import "kitchenly_back_end/internal/models"

// Listes candidates fixes du checkout. Non vides par construction :
// la sélection est un simple index.

func DefaultAddresses() []models.Address {
	return []models.Address{
		{
			ID:        0,
			Name:      "Home",
			Street:    "123 Main Street, Apt 4B",
			City:      "New York, NY 10001",
			IsDefault: true,
		},
		{
			ID:     1,
			Name:   "Office",
			Street: "456 Business Ave, Suite 200",
			City:   "New York, NY 10002",
		},
	}
}

func DefaultPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{
			ID:        0,
			Type:      "Visa",
			Last4:     "4532",
			Expiry:    "12/25",
			IsDefault: true,
		},
		{
			ID:     1,
			Type:   "Mastercard",
			Last4:  "8765",
			Expiry: "06/26",
		},
	}
}
