package inquiry

import (
	"slices"
	"strings"
)

// Recognizer names one field recognizer an engine can run
type Recognizer string

// Recognizers, in the order an engine runs them
const (
	RecognizePorts      Recognizer = "ports"
	RecognizeCarrier    Recognizer = "carrier"
	RecognizeContainers Recognizer = "containers"
	RecognizeWeight     Recognizer = "weight"
	RecognizeVolume     Recognizer = "volume"
	RecognizeTransit    Recognizer = "transit"
	RecognizeRoute      Recognizer = "route"
	RecognizeCargo      Recognizer = "cargo"
	RecognizeIncoterm   Recognizer = "incoterm"
)

// Variant names
const (
	VariantFCL = "fcl"
	VariantLCL = "lcl"
)

// Variant describes which recognizers an engine runs and which cargo table it uses.
// It is fixed at engine construction and never inferred from the input
type Variant struct {
	Name        string
	Recognizers []Recognizer
	// CargoTable names a vocab cargo table, used when RecognizeCargo is enabled
	CargoTable string
}

// FCL is the full inquiry variant: container quantities and the full cargo vocabulary
func FCL() Variant {
	return Variant{
		Name: VariantFCL,
		Recognizers: []Recognizer{
			RecognizePorts,
			RecognizeCarrier,
			RecognizeContainers,
			RecognizeWeight,
			RecognizeTransit,
			RecognizeRoute,
			RecognizeCargo,
			RecognizeIncoterm,
		},
		CargoTable: VariantFCL,
	}
}

// LCL is the consolidated inquiry variant: volume instead of containers, narrower cargo vocabulary
func LCL() Variant {
	return Variant{
		Name: VariantLCL,
		Recognizers: []Recognizer{
			RecognizePorts,
			RecognizeCarrier,
			RecognizeWeight,
			RecognizeVolume,
			RecognizeTransit,
			RecognizeRoute,
			RecognizeCargo,
			RecognizeIncoterm,
		},
		CargoTable: VariantLCL,
	}
}

// Variants returns the built-in variants
func Variants() []Variant { return []Variant{FCL(), LCL()} }

// ParseVariant maps "fcl" / "lcl" (any case) to its descriptor
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case VariantFCL:
		return FCL(), true
	case VariantLCL:
		return LCL(), true
	}
	return Variant{}, false
}

// Has reports whether the variant enables r
func (v Variant) Has(r Recognizer) bool { return slices.Contains(v.Recognizers, r) }
