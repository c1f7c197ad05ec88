package module

import "freightdesk/internal/services/api/inquiry/domain"

// Ports exposes the service port for cross-module lookups and the CLI
type Ports struct {
	Service domain.ServicePort
}
