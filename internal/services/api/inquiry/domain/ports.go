package domain

import "context"

// ServicePort defines the inquiry service interface
type ServicePort interface {
	Extract(ctx context.Context, in ExtractInput) (ExtractionResponse, error)
	Prefill(ctx context.Context, in PrefillInput) (PrefillResponse, error)
	Variants(ctx context.Context) []VariantInfo
}
