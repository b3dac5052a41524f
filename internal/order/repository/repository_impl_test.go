package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smallbiznis/folio/internal/order/domain"
	"github.com/smallbiznis/folio/pkg/db/pagination"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.Purchase{}))
	return db
}

func testRecord(node *snowflake.Node, number string, createdAt time.Time) *domain.Record {
	return &domain.Record{
		Order: domain.Order{
			ID:            node.Generate(),
			OrderNumber:   number,
			BuyerEmail:    "buyer@example.com",
			BuyerCountry:  "DE",
			SellerName:    "Ada Lovelace",
			SellerCountry: "GB",
			Currency:      "USD",
			Metadata:      datatypes.JSONMap{},
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		},
		Purchases: []domain.Purchase{
			{
				ID:          node.Generate(),
				Description: "Weekly newsletter",
				Status:      domain.PurchaseStatusSuccessful,
				Amount:      1500,
				CreatedAt:   createdAt,
			},
		},
	}
}

func TestRepositoryInsertAndFind(t *testing.T) {
	db := openTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := NewRepository(db)
	ctx := context.Background()

	record := testRecord(node, "ORD-1001", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, record))

	byID, err := repo.FindByID(ctx, record.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", byID.Order.OrderNumber)
	require.Len(t, byID.Purchases, 1)
	assert.Equal(t, int64(1500), byID.Purchases[0].Amount)

	byNumber, err := repo.FindByNumber(ctx, "ORD-1001")
	require.NoError(t, err)
	assert.Equal(t, record.Order.ID, byNumber.Order.ID)
}

func TestRepositoryFindMissingOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByNumber(context.Background(), "ORD-NOPE")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestRepositoryListFiltersAndPaginates(t *testing.T) {
	db := openTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		record := testRecord(node, "ORD-"+node.Generate().String(), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Insert(ctx, record))
	}
	other := testRecord(node, "ORD-OTHER", base.Add(time.Hour))
	other.Order.BuyerEmail = "someone@example.net"
	require.NoError(t, repo.Insert(ctx, other))

	got, err := repo.List(ctx, domain.ListOrderFilter{BuyerEmail: "buyer@example.com"}, pagination.Pagination{PageSize: 2})
	require.NoError(t, err)
	// Limit plus one row signals another page.
	require.Len(t, got, 3)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	got, err = repo.List(ctx, domain.ListOrderFilter{BuyerCountry: "FR"}, pagination.Pagination{PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
}
