package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallbiznis/folio/internal/config"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/tax/domain"
)

func TestSupplierDisclosures(t *testing.T) {
	regs := config.Registrations{
		VATNumber:        "EU372000048",
		ABNNumber:        "83 616 425 123",
		GSTNumber:        "723456789RT0001",
		QSTNumber:        "1229876543TQ0001",
		NorwayVATNumber:  "912345678MVA",
		GenericTaxNumber: "EU372000048",
	}
	r := NewResolver(config.NewStaticRegistrationsHolder(regs))

	tests := []struct {
		name    string
		country referencedomain.CountryCode
		want    []domain.Disclosure
	}{
		{
			name:    "eu member",
			country: referencedomain.DE,
			want:    []domain.Disclosure{{Label: "VAT Registration Number", Number: "EU372000048"}},
		},
		{
			name:    "australia",
			country: referencedomain.AU,
			want:    []domain.Disclosure{{Label: "Australian Business Number", Number: "83 616 425 123"}},
		},
		{
			name:    "norway",
			country: referencedomain.NO,
			want:    []domain.Disclosure{{Label: "Norway VAT Registration", Number: "912345678MVA"}},
		},
		{
			name:    "taxes all products",
			country: referencedomain.CH,
			want:    []domain.Disclosure{{Label: "VAT Registration Number", Number: "EU372000048"}},
		},
		{
			name:    "taxes digital products",
			country: referencedomain.MX,
			want:    []domain.Disclosure{{Label: "VAT Registration Number", Number: "EU372000048"}},
		},
		{
			name:    "outside every group",
			country: referencedomain.US,
			want:    nil,
		},
		{
			name: "unresolved seller",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.SupplierDisclosures(tt.country))
		})
	}
}

func TestSupplierDisclosuresCanadaAlwaysBoth(t *testing.T) {
	r := newTestResolver()

	got := r.SupplierDisclosures(referencedomain.CA)
	require.Len(t, got, 2)
	assert.Equal(t, "Canada GST Registration Number", got[0].Label)
	assert.Equal(t, "QST Registration Number", got[1].Label)
}

// Common names resolve through the registry before hitting the chain, so
// a seller profile storing "Germany" still lands in the EU branch.
func TestSupplierDisclosuresFromCommonName(t *testing.T) {
	r := newTestResolver()

	code, ok := referencedomain.CodeByName("Germany")
	require.True(t, ok)
	require.Equal(t, referencedomain.DE, code)

	got := r.SupplierDisclosures(code)
	require.Len(t, got, 1)
	assert.Equal(t, "VAT Registration Number", got[0].Label)
}
