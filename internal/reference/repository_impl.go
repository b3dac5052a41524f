package reference

import (
	"context"

	"github.com/smallbiznis/folio/internal/reference/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	type row struct {
		Code string `gorm:"column:code"`
		Name string `gorm:"column:name"`
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name FROM countries ORDER BY name`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(rows))
	for _, item := range rows {
		countries = append(countries, domain.Country{
			Code: item.Code,
			Name: item.Name,
		})
	}

	return countries, nil
}
