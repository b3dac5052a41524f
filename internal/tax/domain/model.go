package domain

import (
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
)

// BuyerProfile carries the buyer-side tax facts resolved for one
// transaction. Every field is optional; the zero value means the buyer's
// jurisdiction could not be resolved and resolvers fall back to defaults.
type BuyerProfile struct {
	Country       referencedomain.CountryCode
	State         string
	BusinessTaxID string
}

// SellerResidency is the seller's tax residency, owned by the seller's
// profile and read-only here.
type SellerResidency struct {
	Country  referencedomain.CountryCode
	Currency string
}

// Disclosure is one labeled platform tax registration shown on a legal
// document when the platform acts as supplier of record.
type Disclosure struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}
