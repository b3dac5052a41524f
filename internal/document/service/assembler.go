package service

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/folio/internal/config"
	"github.com/smallbiznis/folio/internal/document/domain"
	"github.com/smallbiznis/folio/internal/observability/metrics"
	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	taxservice "github.com/smallbiznis/folio/internal/tax/service"
	"github.com/smallbiznis/folio/pkg/log/ctxlogger"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   config.Config
	Resolver *taxservice.Resolver
	Metrics  *metrics.DocumentMetrics `optional:"true"`
}

// Assembler turns one chargeable transaction into the ordered document
// model. Each call is a single pass over its inputs with no I/O.
type Assembler struct {
	log      *zap.Logger
	platform config.PlatformConfig
	resolver *taxservice.Resolver
	metrics  *metrics.DocumentMetrics
}

func NewAssembler(p Params) *Assembler {
	return &Assembler{
		log:      p.Log.Named("document.assembler"),
		platform: p.Config.Platform,
		resolver: p.Resolver,
		metrics:  p.Metrics,
	}
}

// Assemble builds the document for one order. Identical inputs always
// produce an identical document.
func (a *Assembler) Assemble(ctx context.Context, order domain.Chargeable, mode domain.Mode) (domain.Document, error) {
	if !mode.Valid() {
		a.metrics.RecordFailure("invalid_mode")
		return domain.Document{}, domain.ErrInvalidMode
	}
	if err := a.checkPreconditions(order); err != nil {
		a.metrics.RecordFailure(err.Error())
		return domain.Document{}, err
	}

	buyer := order.BuyerTaxProfile()
	t := computeTotals(order.LineItems(), order.ShippingAmount())

	doc := domain.Document{Heading: resolveHeading(order)}
	if mode == domain.ModeLegal {
		doc.Sections = append(doc.Sections, a.sellerSection(order), a.supplierSection(order))
	}

	rows := []domain.Row{
		labeled("Date", order.CreatedAt().UTC().Format("Jan 2, 2006")),
		labeled("Order number", order.OrderNumber()),
	}

	// The "To" row is an address block. A buyer name rides along only
	// when an address exists; name alone never creates the row.
	if lines := order.BuyerAddressLines(); len(lines) > 0 {
		to := lines
		if name := strings.TrimSpace(order.BuyerName()); name != "" {
			to = append([]string{name}, lines...)
		}
		rows = append(rows, domain.Row{Label: label("To"), Lines: to})
	}

	if notes := strings.TrimSpace(order.AdditionalNotes()); notes != "" {
		rows = append(rows, domain.Row{Label: label("Notes"), Lines: strings.Split(notes, "\n")})
	}

	if taxID := strings.TrimSpace(buyer.BusinessTaxID); taxID != "" {
		taxIDLabel := a.resolver.BusinessTaxIDLabel(buyer)
		if mode == domain.ModeForm {
			taxIDLabel = a.resolver.BusinessTaxIDFormLabel(buyer)
		}
		rows = append(rows,
			labeled(taxIDLabel, taxID),
			domain.Row{Value: a.resolver.ReverseChargeNotice(buyer)},
		)
	}

	rows = append(rows,
		labeled("Email", order.BuyerEmail()),
		domain.Row{Value: t.itemSummary()},
	)

	// Only successful purchases get priced rows, mirroring the totals
	// above so the printed lines always reconcile with Total.
	currency := order.Currency()
	for _, item := range order.LineItems() {
		if item.Status != orderdomain.PurchaseStatusSuccessful {
			continue
		}
		amount := item.Amount - item.RefundedAmount
		if item.FreeTrial {
			amount = 0
		}
		rows = append(rows, labeled(item.Description, formatMoney(amount, currency)))
	}

	// Zero shipping is noise on a legal document but stays editable on
	// the form.
	if t.Shipping != 0 || mode == domain.ModeForm {
		rows = append(rows, labeled("Shipping", formatMoney(t.Shipping, currency)))
	}

	for _, line := range t.TaxLines {
		rows = append(rows, labeled(line.Label, formatMoney(line.Amount, currency)))
	}

	rows = append(rows, labeled("Total", formatMoney(t.Total, currency)))

	if method := strings.TrimSpace(order.PaymentMethod()); method != "" {
		rows = append(rows, labeled("Payment method", method))
	}

	doc.Sections = append(doc.Sections, domain.Section{Rows: rows})

	a.metrics.RecordAssembled(string(mode), string(doc.Heading))
	ctxlogger.WithContext(ctx, a.log).Debug("document assembled",
		zap.String("order_number", order.OrderNumber()),
		zap.String("mode", string(mode)),
		zap.String("heading", string(doc.Heading)),
	)
	return doc, nil
}

func (a *Assembler) checkPreconditions(order domain.Chargeable) error {
	buyer := order.BuyerTaxProfile()
	if buyer.Country != "" && !buyer.Country.Valid() {
		return domain.ErrInvalidCountryCode
	}
	if seller := order.SellerResidency(); seller.Country != "" && !seller.Country.Valid() {
		return domain.ErrInvalidCountryCode
	}
	if order.ShippingAmount() < 0 {
		return domain.ErrNegativeAmount
	}
	for _, item := range order.LineItems() {
		if item.Amount < 0 || item.RefundedAmount < 0 || item.TaxAmount < 0 || item.TaxRefunded < 0 {
			return domain.ErrNegativeAmount
		}
	}
	return nil
}

// sellerSection is the seller identity block. The heading stays "Creator"
// whatever the document heading resolves to.
func (a *Assembler) sellerSection(order domain.Chargeable) domain.Section {
	rows := []domain.Row{{Value: order.SellerName()}}
	if email := strings.TrimSpace(order.SellerEmail()); email != "" {
		rows = append(rows, domain.Row{Value: email, Link: "mailto:" + email})
	}
	if country := order.SellerResidency().Country; country.Valid() {
		rows = append(rows, domain.Row{Value: referencedomain.CountryName(country)})
	}
	return domain.Section{Heading: "Creator", Rows: rows}
}

// supplierSection identifies the platform as supplier of record together
// with the registrations its jurisdictional footprint requires.
func (a *Assembler) supplierSection(order domain.Chargeable) domain.Section {
	rows := []domain.Row{{Lines: append([]string{a.platform.LegalName}, a.platform.AddressLines...)}}
	if email := a.platform.SupportEmail; email != "" {
		rows = append(rows, domain.Row{Value: email, Link: "mailto:" + email})
	}
	for _, disclosure := range a.resolver.SupplierDisclosures(order.SellerResidency().Country) {
		rows = append(rows, labeled(disclosure.Label, disclosure.Number))
	}
	return domain.Section{Heading: "Supplier", Rows: rows}
}

// resolveHeading picks Receipt only for a direct-to-consumer sale to a
// resolved Australian buyer.
func resolveHeading(order domain.Chargeable) domain.Heading {
	if order.BuyerTaxProfile().Country == referencedomain.AU && order.DirectToConsumer() {
		return domain.HeadingReceipt
	}
	return domain.HeadingInvoice
}

func label(s string) *string { return &s }

func labeled(l, value string) domain.Row {
	return domain.Row{Label: label(l), Value: value}
}
