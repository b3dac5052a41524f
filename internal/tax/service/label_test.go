package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallbiznis/folio/internal/config"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/tax/domain"
)

func newTestResolver() *Resolver {
	return NewResolver(config.NewStaticRegistrationsHolder(config.DefaultRegistrations()))
}

func TestBusinessTaxIDLabel(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name    string
		country referencedomain.CountryCode
		state   string
		want    string
	}{
		{name: "quebec before country rules", country: referencedomain.CA, state: "QC", want: "QST ID"},
		{name: "ontario has no special case", country: referencedomain.CA, state: "ON", want: "VAT ID"},
		{name: "canada without state", country: referencedomain.CA, want: "VAT ID"},
		{name: "australia", country: referencedomain.AU, want: "ABN ID"},
		{name: "singapore", country: referencedomain.SG, want: "GST ID"},
		{name: "india shares the gst label", country: referencedomain.IN, want: "GST ID"},
		{name: "norway uses the long form", country: referencedomain.NO, want: "Norway MVA ID"},
		{name: "united arab emirates", country: referencedomain.AE, want: "TRN ID"},
		{name: "bahrain", country: referencedomain.BH, want: "TRN ID"},
		{name: "belarus", country: referencedomain.BY, want: "UNP ID"},
		{name: "chile", country: referencedomain.CL, want: "RUT ID"},
		{name: "colombia", country: referencedomain.CO, want: "NIT ID"},
		{name: "costa rica", country: referencedomain.CR, want: "CPJ ID"},
		{name: "ecuador", country: referencedomain.EC, want: "RUC ID"},
		{name: "egypt", country: referencedomain.EG, want: "TN ID"},
		{name: "georgia", country: referencedomain.GE, want: "TIN ID"},
		{name: "kazakhstan", country: referencedomain.KZ, want: "TIN ID"},
		{name: "morocco", country: referencedomain.MA, want: "TIN ID"},
		{name: "thailand", country: referencedomain.TH, want: "TIN ID"},
		{name: "south korea", country: referencedomain.KR, want: "BRN ID"},
		{name: "russia", country: referencedomain.RU, want: "INN ID"},
		{name: "serbia", country: referencedomain.RS, want: "PIB ID"},
		{name: "turkey", country: referencedomain.TR, want: "VKN ID"},
		{name: "ukraine", country: referencedomain.UA, want: "EDRPOU ID"},
		{name: "iceland", country: referencedomain.IS, want: "VSK ID"},
		{name: "mexico", country: referencedomain.MX, want: "RFC ID"},
		{name: "malaysia", country: referencedomain.MY, want: "SST ID"},
		{name: "new zealand", country: referencedomain.NZ, want: "IRD ID"},
		{name: "japan", country: referencedomain.JP, want: "CN ID"},
		{name: "vietnam", country: referencedomain.VN, want: "CN ID"},
		{name: "unlisted country falls back", country: referencedomain.US, want: "VAT ID"},
		{name: "unresolved buyer falls back", want: "VAT ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.BuyerProfile{Country: tt.country, State: tt.state}
			assert.Equal(t, tt.want, r.BusinessTaxIDLabel(profile))
		})
	}
}

func TestBusinessTaxIDFormLabel(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name    string
		country referencedomain.CountryCode
		state   string
		want    string
	}{
		{name: "quebec", country: referencedomain.CA, state: "QC", want: "QST ID (Optional)"},
		{name: "norway", country: referencedomain.NO, want: "Norway MVA ID (Optional)"},
		{name: "australia", country: referencedomain.AU, want: "ABN ID (Optional)"},
		{name: "unlisted country", country: referencedomain.US, want: "Business VAT ID (Optional)"},
		{name: "unresolved buyer", want: "Business VAT ID (Optional)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.BuyerProfile{Country: tt.country, State: tt.state}
			assert.Equal(t, tt.want, r.BusinessTaxIDFormLabel(profile))
		})
	}
}

func TestBusinessTaxIDLabelNormalizesState(t *testing.T) {
	r := newTestResolver()

	for _, state := range []string{"QC", "qc", " qc ", "Qc"} {
		profile := domain.BuyerProfile{Country: referencedomain.CA, State: state}
		assert.Equalf(t, "QST ID", r.BusinessTaxIDLabel(profile), "state %q", state)
	}
}

func TestBusinessTaxIDLabelIsDeterministic(t *testing.T) {
	r := newTestResolver()
	profile := domain.BuyerProfile{Country: referencedomain.NO, BusinessTaxID: "912345678MVA"}

	first := r.BusinessTaxIDLabel(profile)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.BusinessTaxIDLabel(profile))
	}
}
