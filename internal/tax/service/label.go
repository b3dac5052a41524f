package service

import (
	"strings"

	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/tax/domain"
)

const (
	defaultLegalLabel = "VAT ID"
	defaultFormLabel  = "Business VAT ID (Optional)"
	optionalSuffix    = " (Optional)"
)

// labelRule maps a set of countries, optionally narrowed by state, to the
// canonical short code used as the business-tax-id field name in that
// jurisdiction. Rules are evaluated top to bottom, first match wins, so
// state-qualified rules must come before country-only rules.
type labelRule struct {
	countries []referencedomain.CountryCode
	state     string
	code      string
	// label overrides the derived "<code> ID" wording when a jurisdiction
	// uses a longer official name.
	label string
}

func (r labelRule) matches(country referencedomain.CountryCode, state string) bool {
	if r.state != "" && r.state != state {
		return false
	}
	for _, c := range r.countries {
		if c == country {
			return true
		}
	}
	return false
}

func (r labelRule) legalLabel() string {
	if r.label != "" {
		return r.label
	}
	return r.code + " ID"
}

// labelRules is the single source of truth for jurisdiction-specific
// business-tax-id naming. Both the legal and the form variant derive from
// this table so the two can never drift apart.
var labelRules = []labelRule{
	{countries: []referencedomain.CountryCode{referencedomain.CA}, state: "QC", code: "QST"},
	{countries: []referencedomain.CountryCode{referencedomain.AU}, code: "ABN"},
	{countries: []referencedomain.CountryCode{referencedomain.SG, referencedomain.IN}, code: "GST"},
	{countries: []referencedomain.CountryCode{referencedomain.NO}, code: "MVA", label: "Norway MVA ID"},
	{countries: []referencedomain.CountryCode{referencedomain.AE, referencedomain.BH}, code: "TRN"},
	{countries: []referencedomain.CountryCode{referencedomain.BY}, code: "UNP"},
	{countries: []referencedomain.CountryCode{referencedomain.CL}, code: "RUT"},
	{countries: []referencedomain.CountryCode{referencedomain.CO}, code: "NIT"},
	{countries: []referencedomain.CountryCode{referencedomain.CR}, code: "CPJ"},
	{countries: []referencedomain.CountryCode{referencedomain.EC}, code: "RUC"},
	{countries: []referencedomain.CountryCode{referencedomain.EG}, code: "TN"},
	{countries: []referencedomain.CountryCode{referencedomain.GE, referencedomain.KZ, referencedomain.MA, referencedomain.TH}, code: "TIN"},
	{countries: []referencedomain.CountryCode{referencedomain.KR}, code: "BRN"},
	{countries: []referencedomain.CountryCode{referencedomain.RU}, code: "INN"},
	{countries: []referencedomain.CountryCode{referencedomain.RS}, code: "PIB"},
	{countries: []referencedomain.CountryCode{referencedomain.TR}, code: "VKN"},
	{countries: []referencedomain.CountryCode{referencedomain.UA}, code: "EDRPOU"},
	{countries: []referencedomain.CountryCode{referencedomain.IS}, code: "VSK"},
	{countries: []referencedomain.CountryCode{referencedomain.MX}, code: "RFC"},
	{countries: []referencedomain.CountryCode{referencedomain.MY}, code: "SST"},
	{countries: []referencedomain.CountryCode{referencedomain.NZ}, code: "IRD"},
	{countries: []referencedomain.CountryCode{referencedomain.JP, referencedomain.VN}, code: "CN"},
}

// BusinessTaxIDLabel returns the legal-document field name for a buyer's
// declared business tax id. Unknown or absent countries degrade to the
// generic "VAT ID" label, never an error.
func (r *Resolver) BusinessTaxIDLabel(profile domain.BuyerProfile) string {
	if rule, ok := matchLabelRule(profile); ok {
		return rule.legalLabel()
	}
	return defaultLegalLabel
}

// BusinessTaxIDFormLabel returns the editable-form variant of the field
// name, carrying an "(Optional)" suffix.
func (r *Resolver) BusinessTaxIDFormLabel(profile domain.BuyerProfile) string {
	if rule, ok := matchLabelRule(profile); ok {
		return rule.legalLabel() + optionalSuffix
	}
	return defaultFormLabel
}

func matchLabelRule(profile domain.BuyerProfile) (labelRule, bool) {
	state := normalizeState(profile.State)
	for _, rule := range labelRules {
		if rule.matches(profile.Country, state) {
			return rule, true
		}
	}
	return labelRule{}, false
}

// normalizeState uppercases and trims a state code so "qc " matches the
// Quebec rule the same way "QC" does.
func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
