package service

import (
	"fmt"

	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/tax/domain"
)

const reverseChargeFormat = "Reverse Charge - You are required to account for the %s."

// reverseChargeRule names the tax a buyer must self-account for under the
// reverse-charge mechanism. Evaluated top to bottom, first match wins.
type reverseChargeRule struct {
	match func(country referencedomain.CountryCode, state string) bool
	tax   string
}

// Note: should Malaysia ever join the GST group, the service-tax rule
// below becomes unreachable. Keep the order as is until that is decided.
var reverseChargeRules = []reverseChargeRule{
	{
		match: func(country referencedomain.CountryCode, _ string) bool {
			return referencedomain.IsGST(country) || country == referencedomain.IN
		},
		tax: "GST",
	},
	{
		match: func(country referencedomain.CountryCode, state string) bool {
			return country == referencedomain.CA && state == "QC"
		},
		tax: "QST",
	},
	{
		match: func(country referencedomain.CountryCode, _ string) bool {
			return country == referencedomain.MY
		},
		tax: "service tax",
	},
	{
		match: func(country referencedomain.CountryCode, _ string) bool {
			return country == referencedomain.JP
		},
		tax: "CT",
	},
}

// ReverseChargeNotice returns the law-mandated reverse-charge sentence for
// the buyer's jurisdiction. It is only meaningful on documents that show a
// business-tax-id row; callers gate on the declared tax id, not here.
func (r *Resolver) ReverseChargeNotice(profile domain.BuyerProfile) string {
	state := normalizeState(profile.State)
	for _, rule := range reverseChargeRules {
		if rule.match(profile.Country, state) {
			return fmt.Sprintf(reverseChargeFormat, rule.tax)
		}
	}
	return fmt.Sprintf(reverseChargeFormat, "VAT")
}
