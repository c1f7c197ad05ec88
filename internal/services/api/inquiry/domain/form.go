package domain

import (
	"slices"

	"freightdesk/internal/core/inquiry"
)

// InquiryForm is the editable inquiry a client keeps between extractions.
// It mirrors inquiry.Result field for field
type InquiryForm struct {
	DeparturePort string                  `json:"departurePort"`
	DischargePort string                  `json:"dischargePort"`
	ShipCompany   string                  `json:"shipCompany"`
	ContainerInfo []inquiry.ContainerLine `json:"containerInfo"`
	Weight        string                  `json:"weight"`
	Volume        string                  `json:"volume"`
	TransitType   string                  `json:"transitType"`
	Route         string                  `json:"route"`
	GoodsType     string                  `json:"goodsType"`
	ServiceTerms  string                  `json:"serviceTerms"`
}

// Apply returns f with every field present in r overwritten; absent fields keep their value.
// Container lines from r replace the form's lines and are capped at maxLines (<= 0 means no cap)
func (f InquiryForm) Apply(r inquiry.Result, maxLines int) InquiryForm {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&f.DeparturePort, r.DeparturePort)
	set(&f.DischargePort, r.DischargePort)
	set(&f.ShipCompany, r.ShipCompany)
	set(&f.Weight, r.Weight)
	set(&f.Volume, r.Volume)
	set(&f.TransitType, r.TransitType)
	set(&f.Route, r.Route)
	set(&f.GoodsType, r.GoodsType)
	set(&f.ServiceTerms, r.ServiceTerms)

	if len(r.ContainerInfo) > 0 {
		lines := r.ContainerInfo
		if maxLines > 0 && len(lines) > maxLines {
			lines = lines[:maxLines]
		}
		f.ContainerInfo = slices.Clone(lines)
	}
	return f
}
