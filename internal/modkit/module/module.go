// Package module defines the minimal contract for a modkit module plus port lookups
package module

import (
	phttp "freightdesk/internal/platform/net/http"
)

// Module mirrors modkit.Module; it lives here so port helpers avoid importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
