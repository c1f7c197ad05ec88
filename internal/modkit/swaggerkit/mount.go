// Package swaggerkit mounts Swagger UI and the OpenAPI document for the api
package swaggerkit

import (
	"net/http"

	"freightdesk/internal/platform/logger"
	phttp "freightdesk/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount serves the UI and the patched OpenAPI document when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(DocsPath+"/doc.json"),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DeepLinking(true),
	))
	logger.Named("http").Info().Str("path", DocsPath+"/").Msg("swagger ui enabled")
}
