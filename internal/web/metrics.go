package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPath exposes the prometheus registry.
const MetricsPath = "/metrics"

var httpRequests = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of handled HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// countRequests counts every request by its route pattern, so ids don't blow up the label set.
// It runs outside the access logger, which already resolved errors into a status.
func countRequests(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()

	if err != nil {
		status = fiber.StatusInternalServerError

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			status = ferr.Code
		}
	}

	httpRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()

	return err
}
