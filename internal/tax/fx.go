package tax

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/folio/internal/tax/service"
)

var Module = fx.Module("tax.service",
	fx.Provide(service.NewResolver),
)
