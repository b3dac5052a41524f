package seed

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
)

// EnsureCountries loads the static country registry into the reference
// table. Re-running is safe; existing rows keep their names updated.
func EnsureCountries(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	now := time.Now().UTC()
	rows := make([]referencedomain.Country, 0, len(referencedomain.Countries))
	for _, country := range referencedomain.Countries {
		country.CreatedAt = now
		rows = append(rows, country)
	}

	ctx := context.Background()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&rows).Error
}
