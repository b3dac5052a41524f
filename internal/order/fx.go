package order

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/folio/internal/order/repository"
	"github.com/smallbiznis/folio/internal/order/service"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
