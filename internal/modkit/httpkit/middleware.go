package httpkit

import (
	"net/http"
	"time"

	"freightdesk/internal/platform/config"
	"freightdesk/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
	// MaxInFlight caps concurrent requests; 0 disables throttling
	MaxInFlight int
}

// StackFromConfig reads REQUEST_TIMEOUT, SLOW_REQUEST, CORS_ORIGINS and MAX_IN_FLIGHT
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		MaxInFlight: cfg.MayInt("MAX_IN_FLIGHT", 0),
	}
}

// CommonStack returns the api middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.StripSlashes(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return append(stack, middleware.Defaults(o.Timeout)...)
}
