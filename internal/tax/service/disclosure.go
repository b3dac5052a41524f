package service

import (
	"github.com/smallbiznis/folio/internal/config"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/tax/domain"
)

// disclosureRule maps a seller country to the platform registrations that
// must appear on the legal document when the platform is supplier of
// record. The chain is mutually exclusive and evaluated in order, so a
// country in two groups only ever yields the first listed disclosure.
type disclosureRule struct {
	match   func(country referencedomain.CountryCode) bool
	entries func(regs config.Registrations) []domain.Disclosure
}

var disclosureRules = []disclosureRule{
	{
		match: referencedomain.IsEUVAT,
		entries: func(regs config.Registrations) []domain.Disclosure {
			return []domain.Disclosure{{Label: "VAT Registration Number", Number: regs.VATNumber}}
		},
	},
	{
		match: func(country referencedomain.CountryCode) bool { return country == referencedomain.AU },
		entries: func(regs config.Registrations) []domain.Disclosure {
			return []domain.Disclosure{{Label: "Australian Business Number", Number: regs.ABNNumber}}
		},
	},
	{
		match: func(country referencedomain.CountryCode) bool { return country == referencedomain.CA },
		entries: func(regs config.Registrations) []domain.Disclosure {
			// Canada always discloses both registrations, GST first.
			return []domain.Disclosure{
				{Label: "Canada GST Registration Number", Number: regs.GSTNumber},
				{Label: "QST Registration Number", Number: regs.QSTNumber},
			}
		},
	},
	{
		match: func(country referencedomain.CountryCode) bool { return country == referencedomain.NO },
		entries: func(regs config.Registrations) []domain.Disclosure {
			return []domain.Disclosure{{Label: "Norway VAT Registration", Number: regs.NorwayVATNumber}}
		},
	},
	{
		match: func(country referencedomain.CountryCode) bool {
			return referencedomain.TaxesAllProducts(country) || referencedomain.TaxesDigitalProducts(country)
		},
		entries: func(regs config.Registrations) []domain.Disclosure {
			return []domain.Disclosure{{Label: "VAT Registration Number", Number: regs.GenericTaxNumber}}
		},
	},
}

// SupplierDisclosures returns the ordered platform tax registrations to
// print for a seller in the given country. Countries outside every tax
// group yield an empty list, not an error.
func (r *Resolver) SupplierDisclosures(country referencedomain.CountryCode) []domain.Disclosure {
	regs := r.registrations.Get()
	for _, rule := range disclosureRules {
		if rule.match(country) {
			return rule.entries(regs)
		}
	}
	return nil
}
