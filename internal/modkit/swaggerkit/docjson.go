package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	"freightdesk/internal/core/version"
	"freightdesk/internal/platform/logger"
)

//go:embed openapi.json
var openapiDoc []byte

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mutMu    sync.Mutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject a broken document
var docReader = func() []byte { return openapiDoc }

// Register adds a spec mutator; call it while wiring modules
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("openapi document does not parse")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
		ensureServers(spec, "/api/v1")
		ensureErrorResponse(spec)
		addDefaultResponse(spec, "500", "Internal Server Error", 500, 1, "panic recovered")
		addDefaultResponse(spec, "400", "Bad Request", 400, 4, "text must not be blank")

		mutMu.Lock()
		for _, m := range mutators {
			m(spec)
		}
		mutMu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 (the UI does not render 3.1) with a servers list
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	spec["openapi"] = "3.0.3"
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponse adds the error envelope schema if the document lacks one
func ensureErrorResponse(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse injects an error response under status on every operation lacking one
func addDefaultResponse(spec map[string]any, status, desc string, httpCode, code int, msg string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": httpCode,
					"status":      desc,
					"code":        code,
					"error":       msg,
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}

// Tag returns a mutator that documents a tag once
func Tag(name, description string) SpecMutator {
	return func(spec map[string]any) {
		tags, _ := spec["tags"].([]any)
		for _, t := range tags {
			if m, ok := t.(map[string]any); ok && m["name"] == name {
				return
			}
		}
		spec["tags"] = append(tags, map[string]any{"name": name, "description": description})
	}
}
