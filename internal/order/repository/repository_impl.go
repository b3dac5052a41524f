package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/smallbiznis/folio/internal/order/domain"
	"github.com/smallbiznis/folio/pkg/db/pagination"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, record *domain.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record.Order).Error; err != nil {
			return err
		}
		for i := range record.Purchases {
			record.Purchases[i].OrderID = record.Order.ID
		}
		if len(record.Purchases) == 0 {
			return nil
		}
		return tx.Create(&record.Purchases).Error
	})
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Record, error) {
	return r.find(ctx, "id = ?", id)
}

func (r *repo) FindByNumber(ctx context.Context, orderNumber string) (*domain.Record, error) {
	return r.find(ctx, "order_number = ?", orderNumber)
}

func (r *repo) find(ctx context.Context, query string, arg any) (*domain.Record, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Where(query, arg).
		Take(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	var purchases []domain.Purchase
	err = r.db.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("created_at asc, id asc").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}

	return &domain.Record{Order: order, Purchases: purchases}, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListOrderFilter, page pagination.Pagination) ([]*domain.Order, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.Order{})
	if filter.BuyerEmail != "" {
		stmt = stmt.Where("buyer_email = ?", filter.BuyerEmail)
	}
	if filter.BuyerCountry != "" {
		stmt = stmt.Where("buyer_country = ?", filter.BuyerCountry)
	}
	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		createdAt, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Where("(created_at, id) < (?, ?)", createdAt, cursor.ID)
	}

	var orders []*domain.Order
	err := stmt.
		Order("created_at desc, id desc").
		Limit(page.Limit() + 1).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
