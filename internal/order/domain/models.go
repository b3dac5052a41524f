// Package domain contains persistence models for orders and their
// purchases.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	taxdomain "github.com/smallbiznis/folio/internal/tax/domain"
)

// PurchaseStatus represents purchase lifecycle states.
type PurchaseStatus string

const (
	PurchaseStatusSuccessful PurchaseStatus = "SUCCESSFUL"
	PurchaseStatusFailed     PurchaseStatus = "FAILED"
	PurchaseStatusRefunded   PurchaseStatus = "REFUNDED"
)

// Order represents one completed checkout together with the buyer and
// seller tax facts captured at purchase time. Monetary amounts live on
// the purchases; the order only carries identity and jurisdiction data.
type Order struct {
	ID                 snowflake.ID      `gorm:"primaryKey"`
	OrderNumber        string            `gorm:"type:text;not null;uniqueIndex"`
	BuyerName          string            `gorm:"type:text"`
	BuyerEmail         string            `gorm:"type:text;not null;index"`
	BuyerStreet        string            `gorm:"type:text"`
	BuyerCity          string            `gorm:"type:text"`
	BuyerZip           string            `gorm:"type:text"`
	BuyerCountry       string            `gorm:"type:char(2);index"`
	BuyerState         string            `gorm:"type:text"`
	BuyerBusinessTaxID string            `gorm:"type:text"`
	SellerName         string            `gorm:"type:text;not null"`
	SellerEmail        string            `gorm:"type:text"`
	SellerCountry      string            `gorm:"type:char(2);not null;index"`
	Currency           string            `gorm:"type:text;not null"`
	DirectToConsumer   bool              `gorm:"not null;default:false"`
	AdditionalNotes    string            `gorm:"type:text"`
	PaymentMethod      string            `gorm:"type:text"`
	ShippingAmount     int64             `gorm:"not null;default:0"`
	Metadata           datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt          time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }

// Purchase represents one priced line on an order. All amounts are
// integer minor currency units.
type Purchase struct {
	ID              snowflake.ID   `gorm:"primaryKey"`
	OrderID         snowflake.ID   `gorm:"not null;index"`
	Description     string         `gorm:"type:text;not null"`
	Status          PurchaseStatus `gorm:"type:text;not null;default:'SUCCESSFUL'"`
	Amount          int64          `gorm:"not null"`
	RefundedAmount  int64          `gorm:"not null;default:0"`
	TaxAmount       int64          `gorm:"not null;default:0"`
	TaxRefunded     int64          `gorm:"not null;default:0"`
	TaxLabel        string         `gorm:"type:text"`
	FreeTrial       bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Purchase) TableName() string { return "purchases" }

// Record is one order with its purchases loaded, the unit every document
// operation works on.
type Record struct {
	Order     Order
	Purchases []Purchase
}

func (r *Record) OrderNumber() string { return r.Order.OrderNumber }

func (r *Record) CreatedAt() time.Time { return r.Order.CreatedAt }

func (r *Record) PaymentMethod() string { return r.Order.PaymentMethod }

func (r *Record) AdditionalNotes() string { return r.Order.AdditionalNotes }

func (r *Record) BuyerName() string { return r.Order.BuyerName }

func (r *Record) BuyerEmail() string { return r.Order.BuyerEmail }

func (r *Record) Currency() string { return r.Order.Currency }

func (r *Record) SellerName() string { return r.Order.SellerName }

func (r *Record) SellerEmail() string { return r.Order.SellerEmail }

func (r *Record) ShippingAmount() int64 { return r.Order.ShippingAmount }

func (r *Record) DirectToConsumer() bool { return r.Order.DirectToConsumer }

// BuyerAddressLines returns the non-blank buyer address parts in print
// order. An entirely blank address yields an empty slice.
func (r *Record) BuyerAddressLines() []string {
	var lines []string
	for _, part := range []string{r.Order.BuyerStreet, r.Order.BuyerCity, r.Order.BuyerZip, countryLine(r.Order.BuyerCountry)} {
		if part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}

func countryLine(code string) string {
	country := referencedomain.CountryCode(code)
	if !country.Valid() {
		return ""
	}
	return referencedomain.CountryName(country)
}

// BuyerTaxProfile exposes the buyer jurisdiction facts the resolvers need.
func (r *Record) BuyerTaxProfile() taxdomain.BuyerProfile {
	return taxdomain.BuyerProfile{
		Country:       referencedomain.CountryCode(r.Order.BuyerCountry),
		State:         r.Order.BuyerState,
		BusinessTaxID: r.Order.BuyerBusinessTaxID,
	}
}

// SellerResidency exposes the seller jurisdiction the disclosure resolver
// keys on.
func (r *Record) SellerResidency() taxdomain.SellerResidency {
	return taxdomain.SellerResidency{
		Country:  referencedomain.CountryCode(r.Order.SellerCountry),
		Currency: r.Order.Currency,
	}
}

// LineItems returns the purchase lines in creation order.
func (r *Record) LineItems() []Purchase { return r.Purchases }
