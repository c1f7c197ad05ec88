// Package domain holds DTOs for the inquiry HTTP and service contracts
package domain

import "freightdesk/internal/core/inquiry"

// ExtractInput is one free-text inquiry. Variant defaults to the configured variant when empty
type ExtractInput struct {
	Text    string `json:"text"              validate:"required,notblank,max=20000" example:"CNSHA-USLAX 2x40HC MSC direct FOB"`
	Variant string `json:"variant,omitempty" validate:"omitempty,max=16"           example:"fcl"`
}

// ExtractionResponse carries the sparse result plus the list of recognized fields
type ExtractionResponse struct {
	ID      string          `json:"id"      example:"5c1b8f0e-8a5e-4b7e-9d43-0b8d2a3c4e10"`
	Variant string          `json:"variant" example:"fcl"`
	Fields  []inquiry.Field `json:"fields"  example:"departurePort"`
	Result  inquiry.Result  `json:"result"`
}

// PrefillInput is an inquiry plus the form state it should be merged onto
type PrefillInput struct {
	Text    string      `json:"text"              validate:"required,notblank,max=20000" example:"LCL 3 CBM 500KG to Hamburg"`
	Variant string      `json:"variant,omitempty" validate:"omitempty,max=16"           example:"lcl"`
	Form    InquiryForm `json:"form"`
}

// PrefillResponse is the merged form plus the raw extraction it came from
type PrefillResponse struct {
	ID      string          `json:"id"`
	Variant string          `json:"variant"`
	Fields  []inquiry.Field `json:"fields"`
	Form    InquiryForm     `json:"form"`
	Result  inquiry.Result  `json:"result"`
}

// VariantInfo describes one variant for clients building their forms
type VariantInfo struct {
	Name        string   `json:"name"         example:"fcl"`
	Recognizers []string `json:"recognizers"  example:"ports"`
	CargoTable  string   `json:"cargo_table"  example:"fcl"`
	CargoValues []string `json:"cargo_values" example:"普货"`
	Default     bool     `json:"default"      example:"true"`
}
