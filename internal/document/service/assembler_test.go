package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smallbiznis/folio/internal/config"
	"github.com/smallbiznis/folio/internal/document/domain"
	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
	taxservice "github.com/smallbiznis/folio/internal/tax/service"
)

var _ domain.Chargeable = (*orderdomain.Record)(nil)

func newTestAssembler() *Assembler {
	return NewAssembler(Params{
		Log: zap.NewNop(),
		Config: config.Config{
			Platform: config.PlatformConfig{
				LegalName:    "Folio Marketplace, Inc.",
				AddressLines: []string{"548 Market St", "San Francisco, CA 94104", "United States"},
				SupportEmail: "support@folio.example",
			},
		},
		Resolver: taxservice.NewResolver(config.NewStaticRegistrationsHolder(config.DefaultRegistrations())),
	})
}

func testOrder() *orderdomain.Record {
	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return &orderdomain.Record{
		Order: orderdomain.Order{
			OrderNumber:   "ORD-2001",
			BuyerName:     "Grace Hopper",
			BuyerEmail:    "grace@example.com",
			BuyerStreet:   "1 Navy Way",
			BuyerCity:     "Arlington",
			BuyerZip:      "22202",
			BuyerCountry:  "US",
			SellerName:    "Ada Lovelace",
			SellerEmail:   "ada@example.com",
			SellerCountry: "GB",
			Currency:      "USD",
			PaymentMethod: "VISA *4242",
			CreatedAt:     created,
		},
		Purchases: []orderdomain.Purchase{
			{Description: "Weekly newsletter", Status: orderdomain.PurchaseStatusSuccessful, Amount: 1500, TaxAmount: 300, TaxLabel: "VAT"},
		},
	}
}

func findRow(t *testing.T, doc domain.Document, label string) (domain.Row, bool) {
	t.Helper()
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			if row.Label != nil && *row.Label == label {
				return row, true
			}
		}
	}
	return domain.Row{}, false
}

func mainRows(doc domain.Document) []domain.Row {
	return doc.Sections[len(doc.Sections)-1].Rows
}

func TestAssembleRowOrder(t *testing.T) {
	a := newTestAssembler()

	doc, err := a.Assemble(context.Background(), testOrder(), domain.ModeLegal)
	require.NoError(t, err)

	var labels []string
	for _, row := range mainRows(doc) {
		if row.Label != nil {
			labels = append(labels, *row.Label)
		}
	}
	assert.Equal(t, []string{
		"Date",
		"Order number",
		"To",
		"Email",
		"Weekly newsletter",
		"VAT",
		"Total",
		"Payment method",
	}, labels)

	date, ok := findRow(t, doc, "Date")
	require.True(t, ok)
	assert.Equal(t, "Mar 14, 2026", date.Value)

	total, ok := findRow(t, doc, "Total")
	require.True(t, ok)
	assert.Equal(t, "USD 18.00", total.Value)
}

func TestAssembleIsIdempotent(t *testing.T) {
	a := newTestAssembler()
	order := testOrder()

	first, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssembleHeading(t *testing.T) {
	a := newTestAssembler()

	australian := testOrder()
	australian.Order.BuyerCountry = "AU"
	australian.Order.DirectToConsumer = true
	doc, err := a.Assemble(context.Background(), australian, domain.ModeLegal)
	require.NoError(t, err)
	assert.Equal(t, domain.HeadingReceipt, doc.Heading)

	// Direct-to-consumer alone is not enough without an Australian buyer.
	american := testOrder()
	american.Order.DirectToConsumer = true
	doc, err = a.Assemble(context.Background(), american, domain.ModeLegal)
	require.NoError(t, err)
	assert.Equal(t, domain.HeadingInvoice, doc.Heading)

	notDirect := testOrder()
	notDirect.Order.BuyerCountry = "AU"
	doc, err = a.Assemble(context.Background(), notDirect, domain.ModeLegal)
	require.NoError(t, err)
	assert.Equal(t, domain.HeadingInvoice, doc.Heading)
}

func TestAssembleOmitsBlankAddress(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Order.BuyerStreet = ""
	order.Order.BuyerCity = ""
	order.Order.BuyerZip = ""
	order.Order.BuyerCountry = ""

	doc, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)

	_, ok := findRow(t, doc, "To")
	assert.False(t, ok, "blank address must omit the row entirely")
}

func TestAssembleNameAloneDoesNotCreateToRow(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Order.BuyerName = "Grace Hopper"
	order.Order.BuyerStreet = ""
	order.Order.BuyerCity = ""
	order.Order.BuyerZip = ""
	order.Order.BuyerCountry = ""

	doc, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)

	_, ok := findRow(t, doc, "To")
	assert.False(t, ok, "a name without any address stays off the document")

	withAddress := testOrder()
	withAddress.Order.BuyerName = "Grace Hopper"
	doc, err = a.Assemble(context.Background(), withAddress, domain.ModeLegal)
	require.NoError(t, err)

	to, ok := findRow(t, doc, "To")
	require.True(t, ok)
	require.NotEmpty(t, to.Lines)
	assert.Equal(t, "Grace Hopper", to.Lines[0])
}

func TestAssembleFreeTrialContributesZero(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Purchases = append(order.Purchases, orderdomain.Purchase{
		Description: "Premium trial",
		Status:      orderdomain.PurchaseStatusSuccessful,
		Amount:      9900,
		FreeTrial:   true,
	})

	doc, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)

	trial, ok := findRow(t, doc, "Premium trial")
	require.True(t, ok)
	assert.Equal(t, "USD 0.00", trial.Value)

	total, ok := findRow(t, doc, "Total")
	require.True(t, ok)
	assert.Equal(t, "USD 18.00", total.Value)

	var summary bool
	for _, row := range mainRows(doc) {
		if row.Label == nil && row.Value == "2 items purchased" {
			summary = true
		}
	}
	assert.True(t, summary, "trial purchases still count as items")
}

func TestAssembleSkipsFailedPurchases(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Purchases = append(order.Purchases, orderdomain.Purchase{
		Description: "Failed charge",
		Status:      orderdomain.PurchaseStatusFailed,
		Amount:      99900,
	})

	doc, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)

	_, ok := findRow(t, doc, "Failed charge")
	assert.False(t, ok, "failed purchases never get a priced row")

	total, ok := findRow(t, doc, "Total")
	require.True(t, ok)
	assert.Equal(t, "USD 18.00", total.Value)

	var summary bool
	for _, row := range mainRows(doc) {
		if row.Label == nil && row.Value == "1 item purchased" {
			summary = true
		}
	}
	assert.True(t, summary)
}

func TestAssembleShippingAsymmetry(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()

	legal, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)
	_, ok := findRow(t, legal, "Shipping")
	assert.False(t, ok, "zero shipping stays off the legal document")

	form, err := a.Assemble(context.Background(), order, domain.ModeForm)
	require.NoError(t, err)
	shipping, ok := findRow(t, form, "Shipping")
	require.True(t, ok, "the form always shows shipping")
	assert.Equal(t, "USD 0.00", shipping.Value)

	order.Order.ShippingAmount = 450
	legal, err = a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)
	shipping, ok = findRow(t, legal, "Shipping")
	require.True(t, ok)
	assert.Equal(t, "USD 4.50", shipping.Value)
}

func TestAssembleBusinessTaxIDRow(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Order.BuyerCountry = "NO"
	order.Order.BuyerBusinessTaxID = "912345678MVA"

	legal, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)
	row, ok := findRow(t, legal, "Norway MVA ID")
	require.True(t, ok)
	assert.Equal(t, "912345678MVA", row.Value)

	// The notice row follows immediately and falls back to VAT phrasing
	// even though the label is bespoke.
	rows := mainRows(legal)
	var notice string
	for i, r := range rows {
		if r.Label != nil && *r.Label == "Norway MVA ID" {
			notice = rows[i+1].Value
		}
	}
	assert.Equal(t, "Reverse Charge - You are required to account for the VAT.", notice)

	form, err := a.Assemble(context.Background(), order, domain.ModeForm)
	require.NoError(t, err)
	_, ok = findRow(t, form, "Norway MVA ID (Optional)")
	assert.True(t, ok)
}

func TestAssembleNoBusinessTaxIDRowWithoutDeclaredID(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Order.BuyerCountry = "AU"

	doc, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)
	for _, row := range mainRows(doc) {
		if row.Label != nil {
			assert.NotEqual(t, "ABN ID", *row.Label)
		}
	}
}

func TestAssembleLegalModeSections(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Order.SellerCountry = "DE"

	legal, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)
	require.Len(t, legal.Sections, 3)
	assert.Equal(t, "Creator", legal.Sections[0].Heading)
	assert.Equal(t, "Supplier", legal.Sections[1].Heading)

	disclosure, ok := findRow(t, legal, "VAT Registration Number")
	require.True(t, ok)
	assert.Equal(t, "EU372000048", disclosure.Value)

	form, err := a.Assemble(context.Background(), order, domain.ModeForm)
	require.NoError(t, err)
	require.Len(t, form.Sections, 1)
}

func TestAssemblePreconditions(t *testing.T) {
	a := newTestAssembler()

	badCountry := testOrder()
	badCountry.Order.BuyerCountry = "usa"
	_, err := a.Assemble(context.Background(), badCountry, domain.ModeLegal)
	assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)

	negative := testOrder()
	negative.Purchases[0].Amount = -100
	_, err = a.Assemble(context.Background(), negative, domain.ModeLegal)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = a.Assemble(context.Background(), testOrder(), domain.Mode("pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestAssembleUnresolvedBuyerFallsBack(t *testing.T) {
	a := newTestAssembler()

	order := testOrder()
	order.Order.BuyerCountry = ""
	order.Order.BuyerBusinessTaxID = "12345"

	doc, err := a.Assemble(context.Background(), order, domain.ModeLegal)
	require.NoError(t, err)

	row, ok := findRow(t, doc, "VAT ID")
	require.True(t, ok)
	assert.Equal(t, "12345", row.Value)
}
