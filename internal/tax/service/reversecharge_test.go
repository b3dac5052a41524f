package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/tax/domain"
)

func TestReverseChargeNotice(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name    string
		country referencedomain.CountryCode
		state   string
		want    string
	}{
		{name: "australia is gst", country: referencedomain.AU, want: "Reverse Charge - You are required to account for the GST."},
		{name: "new zealand is gst", country: referencedomain.NZ, want: "Reverse Charge - You are required to account for the GST."},
		{name: "singapore is gst", country: referencedomain.SG, want: "Reverse Charge - You are required to account for the GST."},
		{name: "india is gst without group membership", country: referencedomain.IN, want: "Reverse Charge - You are required to account for the GST."},
		{name: "quebec is qst", country: referencedomain.CA, state: "QC", want: "Reverse Charge - You are required to account for the QST."},
		{name: "canada outside quebec is vat", country: referencedomain.CA, state: "ON", want: "Reverse Charge - You are required to account for the VAT."},
		{name: "malaysia is service tax", country: referencedomain.MY, want: "Reverse Charge - You are required to account for the service tax."},
		{name: "japan is ct", country: referencedomain.JP, want: "Reverse Charge - You are required to account for the CT."},
		{name: "germany is vat", country: referencedomain.DE, want: "Reverse Charge - You are required to account for the VAT."},
		{name: "unresolved buyer is vat", want: "Reverse Charge - You are required to account for the VAT."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.BuyerProfile{Country: tt.country, State: tt.state}
			assert.Equal(t, tt.want, r.ReverseChargeNotice(profile))
		})
	}
}

// Norway names its tax id field but has no reverse-charge override, so the
// label is bespoke while the notice stays generic. Pins a past mixup
// between the two tables.
func TestReverseChargeNoticeNorwayStaysGeneric(t *testing.T) {
	r := newTestResolver()
	profile := domain.BuyerProfile{Country: referencedomain.NO, BusinessTaxID: "912345678MVA"}

	assert.Equal(t, "Norway MVA ID", r.BusinessTaxIDLabel(profile))
	assert.Equal(t, "Reverse Charge - You are required to account for the VAT.", r.ReverseChargeNotice(profile))
}

func TestReverseChargeNoticeCoversEveryGSTCountry(t *testing.T) {
	r := newTestResolver()

	for _, country := range []referencedomain.CountryCode{referencedomain.AU, referencedomain.NZ, referencedomain.SG} {
		profile := domain.BuyerProfile{Country: country}
		assert.Equalf(t, "Reverse Charge - You are required to account for the GST.", r.ReverseChargeNotice(profile), "country %s", country)
	}
}
