package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"github.com/smallbiznis/folio/pkg/db/pagination"
)

var (
	ErrOrderNotFound        = errors.New("order_not_found")
	ErrInvalidBuyerCountry  = errors.New("invalid_buyer_country")
	ErrInvalidSellerCountry = errors.New("invalid_seller_country")
	ErrNegativeAmount       = errors.New("negative_amount")
	ErrDuplicateOrderNumber = errors.New("duplicate_order_number")
)

type ListOrderFilter struct {
	BuyerEmail   string `form:"buyer_email"`
	BuyerCountry string `form:"buyer_country"`
}

type ListOrderRequest struct {
	pagination.Pagination
	ListOrderFilter
}

type ListOrderResponse struct {
	pagination.PageInfo
	Orders []Order `json:"orders"`
}

type Repository interface {
	Insert(ctx context.Context, record *Record) error
	FindByID(ctx context.Context, id snowflake.ID) (*Record, error)
	FindByNumber(ctx context.Context, orderNumber string) (*Record, error)
	List(ctx context.Context, filter ListOrderFilter, page pagination.Pagination) ([]*Order, error)
}

type Service interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, req ListOrderRequest) (ListOrderResponse, error)
}
