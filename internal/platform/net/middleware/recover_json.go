package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "freightdesk/internal/platform/errors"
	"freightdesk/internal/platform/logger"
	phttp "freightdesk/internal/platform/net/http"
)

// RecoverJSON converts panics into the 500 error envelope and logs the stack.
// http.ErrAbortHandler is re-raised so the server can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.Handle(func(*stdhttp.Request) phttp.Response {
				return phttp.Error(perr.PanicErrf("panic recovered"))
			})(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}
