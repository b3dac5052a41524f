// Package domain holds the renderable document model produced for one
// order. The model is a pure value: consumers must preserve row order and
// join multi-line values with their own line-break convention.
package domain

import (
	"time"

	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
	taxdomain "github.com/smallbiznis/folio/internal/tax/domain"
)

// Mode selects the audience a document is assembled for.
type Mode string

const (
	// ModeLegal is the printable legal document, including seller and
	// platform supplier identity blocks.
	ModeLegal Mode = "legal"
	// ModeForm is the editable-form variant. Identity blocks are left to
	// the form surface and optional fields carry form wording.
	ModeForm Mode = "form"
)

func (m Mode) Valid() bool { return m == ModeLegal || m == ModeForm }

// Heading is the document title.
type Heading string

const (
	HeadingReceipt Heading = "Receipt"
	HeadingInvoice Heading = "Invoice"
)

// Row is one labeled line. A nil Label renders the value alone. Lines
// carries multi-line values such as addresses; Value and Lines are
// mutually exclusive.
type Row struct {
	Label *string  `json:"label"`
	Value string   `json:"value,omitempty"`
	Lines []string `json:"lines,omitempty"`
	Link  string   `json:"link,omitempty"`
}

// Section is an ordered group of rows under an optional heading.
type Section struct {
	Heading string `json:"heading,omitempty"`
	Rows    []Row  `json:"rows"`
}

// Document is the assembled, renderable model for one order.
type Document struct {
	Heading  Heading   `json:"heading"`
	Sections []Section `json:"sections"`
}

// Chargeable is the narrow view of a transaction the assembler consumes.
// Resolvers and the assembler depend only on this interface, never on a
// concrete order type.
type Chargeable interface {
	OrderNumber() string
	CreatedAt() time.Time
	PaymentMethod() string
	AdditionalNotes() string
	BuyerName() string
	BuyerEmail() string
	BuyerAddressLines() []string
	BuyerTaxProfile() taxdomain.BuyerProfile
	SellerName() string
	SellerEmail() string
	SellerResidency() taxdomain.SellerResidency
	Currency() string
	ShippingAmount() int64
	DirectToConsumer() bool
	LineItems() []orderdomain.Purchase
}
