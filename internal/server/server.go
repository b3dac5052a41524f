package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/smallbiznis/folio/internal/config"
	"github.com/smallbiznis/folio/internal/document"
	"github.com/smallbiznis/folio/internal/document/render"
	documentservice "github.com/smallbiznis/folio/internal/document/service"
	"github.com/smallbiznis/folio/internal/observability"
	obsmiddleware "github.com/smallbiznis/folio/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/folio/internal/observability/metrics"
	obstracing "github.com/smallbiznis/folio/internal/observability/tracing"
	"github.com/smallbiznis/folio/internal/order"
	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
	"github.com/smallbiznis/folio/internal/providers/pdf"
	"github.com/smallbiznis/folio/internal/reference"
	referencedomain "github.com/smallbiznis/folio/internal/reference/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	reference.Module,
	order.Module,
	document.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	refrepo   referencedomain.Repository
	orderSvc  orderdomain.Service
	assembler *documentservice.Assembler
	renderer  render.Renderer
	pdfGen    pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin       *gin.Engine
	Cfg       config.Config
	Refrepo   referencedomain.Repository
	OrderSvc  orderdomain.Service
	Assembler *documentservice.Assembler
	Renderer  render.Renderer
	PDFGen    pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:    p.Gin,
		cfg:       p.Cfg,
		refrepo:   p.Refrepo,
		orderSvc:  p.OrderSvc,
		assembler: p.Assembler,
		renderer:  p.Renderer,
		pdfGen:    p.PDFGen,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/v1")

	api.GET("/reference/countries", s.ListCountries)

	// -------- Orders --------
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)

	// -------- Documents --------
	api.GET("/orders/:id/document", s.GetOrderDocument)
	api.GET("/orders/:id/document.html", s.GetOrderDocumentHTML)
	api.GET("/orders/:id/document.pdf", s.GetOrderDocumentPDF)
}
