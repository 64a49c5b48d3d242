// Package httpapi is the JSON HTTP surface of the storefront, with
// prometheus metrics and a health probe.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront/storefront"
)

// NewRouter builds the echo instance. gatherer backs /metrics; nil uses the
// default prometheus registry.
func NewRouter(svc *storefront.Service, logger *zap.Logger, gatherer prometheus.Gatherer) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if herr := fromError(c, err); herr != nil {
			logger.Error("writing error response", zap.Error(herr))
		}
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	h := &handlers{svc: svc, logger: logger}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "SERVING"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	api.GET("/catalog", h.browse)
	api.GET("/catalog/facets", h.facets)
	api.GET("/catalog/:pid", h.product)
	api.GET("/inventory", h.inventory)

	api.POST("/sessions", h.createSession)
	api.DELETE("/sessions/:id", h.endSession)
	api.POST("/sessions/:id/items", h.addItem)
	api.DELETE("/sessions/:id/items", h.clearCart)
	api.PUT("/sessions/:id/items/:pid", h.setQuantity)
	api.DELETE("/sessions/:id/items/:pid", h.removeItem)
	api.POST("/sessions/:id/items/:pid/decrement", h.decrementItem)
	api.POST("/sessions/:id/promo", h.applyPromo)
	api.DELETE("/sessions/:id/promo", h.clearPromo)
	api.GET("/sessions/:id/cart", h.cart)
	api.POST("/sessions/:id/checkout", h.checkout)

	api.GET("/orders", h.listOrders)
	api.PUT("/orders/:id/status", h.updateOrderStatus)

	return e
}

// Serve runs handler on lis until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, lis net.Listener, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()
	logger.Info("http server started", zap.String("addr", lis.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	}
}
