package service

import (
	"github.com/smallbiznis/folio/internal/config"
)

// Resolver answers the jurisdiction questions a document needs: how the
// business-tax-id field is named, whether a reverse-charge notice applies
// and which platform registrations must be disclosed. Every method is a
// pure function of its arguments plus the injected registration config;
// no method keeps state between calls.
type Resolver struct {
	registrations *config.RegistrationsHolder
}

func NewResolver(registrations *config.RegistrationsHolder) *Resolver {
	return &Resolver{registrations: registrations}
}
