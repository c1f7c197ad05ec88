// Package http provides HTTP transport for the inquiry API
package http

import (
	stdhttp "net/http"

	"freightdesk/internal/modkit/httpkit"
	"freightdesk/internal/services/api/inquiry/domain"
)

// Register mounts inquiry endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort, opts httpkit.JSONOptions) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/extract", h.extract, opts)
	httpkit.PostJSON(r, "/prefill", h.prefill, opts)
	httpkit.Get(r, "/variants", h.variants)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /inquiries/extract Inquiries inquiryExtract
// @Summary Extract inquiry fields from free text
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param payload body domain.ExtractInput true "Inquiry text"
// @Success 200 {object} domain.ExtractionResponse "ok"
// @Router /inquiries/extract [post]
func (h *handlers) extract(r *stdhttp.Request, in domain.ExtractInput) (any, error) {
	return h.svc.Extract(r.Context(), in)
}

// swagger:route POST /inquiries/prefill Inquiries inquiryPrefill
// @Summary Extract and merge onto an inquiry form
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param payload body domain.PrefillInput true "Inquiry text and current form"
// @Success 200 {object} domain.PrefillResponse "ok"
// @Router /inquiries/prefill [post]
func (h *handlers) prefill(r *stdhttp.Request, in domain.PrefillInput) (any, error) {
	return h.svc.Prefill(r.Context(), in)
}

// swagger:route GET /inquiries/variants Inquiries inquiryVariants
// @Summary List extraction variants
// @Tags Inquiries
// @Produce json
// @Success 200 {array} domain.VariantInfo "ok"
// @Router /inquiries/variants [get]
func (h *handlers) variants(r *stdhttp.Request) (any, error) {
	return h.svc.Variants(r.Context()), nil
}
