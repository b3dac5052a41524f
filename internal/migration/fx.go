package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/smallbiznis/folio/internal/config"
	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
	"github.com/smallbiznis/folio/internal/seed"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite cover local setups; the versioned SQL
			// only targets postgres.
			err := conn.AutoMigrate(
				&referencedomain.Country{},
				&orderdomain.Order{},
				&orderdomain.Purchase{},
			)
			if err != nil {
				return err
			}
		}

		return seed.EnsureCountries(conn)
	}),
)
