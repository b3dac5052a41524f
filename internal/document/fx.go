package document

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/folio/internal/document/render"
	"github.com/smallbiznis/folio/internal/document/service"
	"github.com/smallbiznis/folio/internal/tax"
)

var Module = fx.Module("document.service",
	tax.Module,
	fx.Provide(render.NewRenderer),
	fx.Provide(service.NewAssembler),
)
