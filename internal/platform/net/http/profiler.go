package http

import (
	stdhttp "net/http"
	"strings"

	"freightdesk/internal/platform/logger"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof and expvar under prefix (e.g. "/debug") when enabled.
// It sits outside the api middleware stack, so no request timeout cuts a CPU profile short
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	r.Handle(prefix+"/*", stdhttp.StripPrefix(prefix, mw.Profiler()))
	logger.Named("http").Warn().Str("path", prefix+"/pprof/").Msg("profiler enabled")
}
