package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/smallbiznis/folio/internal/clock"
	"github.com/smallbiznis/folio/internal/order/domain"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/pkg/db"
	"github.com/smallbiznis/folio/pkg/db/pagination"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("order.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	if record.Order.BuyerCountry != "" {
		if !referencedomain.CountryCode(record.Order.BuyerCountry).Valid() {
			return nil, domain.ErrInvalidBuyerCountry
		}
	}
	if !referencedomain.CountryCode(record.Order.SellerCountry).Valid() {
		return nil, domain.ErrInvalidSellerCountry
	}
	for _, purchase := range record.Purchases {
		if purchase.Amount < 0 || purchase.RefundedAmount < 0 || purchase.TaxAmount < 0 || purchase.TaxRefunded < 0 {
			return nil, domain.ErrNegativeAmount
		}
	}
	if record.Order.ShippingAmount < 0 {
		return nil, domain.ErrNegativeAmount
	}

	now := s.clock.Now()
	record.Order.ID = s.genID.Generate()
	if record.Order.OrderNumber == "" {
		record.Order.OrderNumber = record.Order.ID.String()
	}
	if record.Order.Metadata == nil {
		record.Order.Metadata = datatypes.JSONMap{}
	}
	record.Order.CreatedAt = now
	record.Order.UpdatedAt = now
	for i := range record.Purchases {
		record.Purchases[i].ID = s.genID.Generate()
		if record.Purchases[i].Status == "" {
			record.Purchases[i].Status = domain.PurchaseStatusSuccessful
		}
		record.Purchases[i].CreatedAt = now
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateOrderNumber
		}
		return nil, err
	}
	return record, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Record, error) {
	number := strings.TrimSpace(id)
	if number == "" {
		return nil, domain.ErrOrderNotFound
	}

	if parsed, err := snowflake.ParseString(number); err == nil {
		record, err := s.repo.FindByID(ctx, parsed)
		if err == nil {
			return record, nil
		}
		if err != domain.ErrOrderNotFound {
			return nil, err
		}
	}

	return s.repo.FindByNumber(ctx, number)
}

func (s *Service) List(ctx context.Context, req domain.ListOrderRequest) (domain.ListOrderResponse, error) {
	items, err := s.repo.List(ctx, req.ListOrderFilter, req.Pagination)
	if err != nil {
		return domain.ListOrderResponse{}, err
	}

	pageInfo, items := pagination.BuildCursorPageInfo(items, req.Limit(), func(order *domain.Order) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        order.ID.String(),
			CreatedAt: order.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			s.log.Warn("encode cursor", zap.Error(err))
			return ""
		}
		return token
	})

	resp := domain.ListOrderResponse{PageInfo: *pageInfo}
	resp.Orders = make([]domain.Order, 0, len(items))
	for _, item := range items {
		resp.Orders = append(resp.Orders, *item)
	}
	return resp, nil
}
