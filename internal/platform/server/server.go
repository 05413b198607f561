// Package server builds the fiber app shared by every module: middleware,
// liveness and the Prometheus endpoint.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const accessLogFormat = "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n"

type Options struct {
	CORSOrigins []string
	// AccessLog enables the fiber request logger.
	AccessLog bool
}

func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "eventra-dashboard-service",
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{Format: accessLogFormat}))
	}

	corsCfg := cors.ConfigDefault
	if len(opts.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = strings.Join(opts.CORSOrigins, ",")
	}
	app.Use(cors.New(corsCfg))

	return app
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health answers "ok" when every dependency responds to a ping within two
// seconds. A nil pinger is skipped.
func Health(pingers ...Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.PingContext(ctx); err != nil {
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable",
					"error":  err.Error(),
				})
			}
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
	}
}

// Metrics serves the registry in the Prometheus text format.
func Metrics(reg *prometheus.Registry) fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}
