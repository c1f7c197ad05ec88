// Package inquiry extracts a sparse shipment-inquiry record from pasted free text.
// An Engine runs independent field recognizers over the same text and unions their
// outputs; no recognizer sees another's result and nothing is derived across fields
package inquiry

import (
	"fmt"
	"strings"

	"freightdesk/internal/core/vocab"
)

type step struct {
	name Recognizer
	run  recognizer
}

// Engine is immutable after New and safe for concurrent use
type Engine struct {
	variant Variant
	steps   []step
}

// New compiles the variant's recognizers against a vocabulary
func New(v *vocab.Vocabulary, variant Variant) (*Engine, error) {
	if v == nil {
		return nil, fmt.Errorf("inquiry: nil vocabulary")
	}
	e := &Engine{variant: variant}
	for _, name := range variant.Recognizers {
		run, err := build(v, variant, name)
		if err != nil {
			return nil, err
		}
		e.steps = append(e.steps, step{name: name, run: run})
	}
	return e, nil
}

// MustNew is New that panics; for wiring the embedded vocabulary
func MustNew(v *vocab.Vocabulary, variant Variant) *Engine {
	e, err := New(v, variant)
	if err != nil {
		panic(err)
	}
	return e
}

func build(v *vocab.Vocabulary, variant Variant, name Recognizer) (recognizer, error) {
	switch name {
	case RecognizePorts:
		return recognizePorts, nil
	case RecognizeCarrier:
		return carrierRecognizer(v), nil
	case RecognizeContainers:
		return containerRecognizer(v)
	case RecognizeWeight:
		return recognizeWeight, nil
	case RecognizeVolume:
		return recognizeVolume, nil
	case RecognizeTransit:
		return transitRecognizer(v), nil
	case RecognizeRoute:
		return routeRecognizer(v), nil
	case RecognizeCargo:
		rules, ok := v.CargoTable(variant.CargoTable)
		if !ok {
			return nil, fmt.Errorf("inquiry: variant %q: unknown cargo table %q", variant.Name, variant.CargoTable)
		}
		return cargoRecognizer(rules), nil
	case RecognizeIncoterm:
		return incotermRecognizer(v), nil
	}
	return nil, fmt.Errorf("inquiry: variant %q: unknown recognizer %q", variant.Name, name)
}

// Variant returns the descriptor the engine was built with
func (e *Engine) Variant() Variant { return e.variant }

// Extract is total: any string, including empty or whitespace-only, yields a result
func (e *Engine) Extract(text string) Result {
	var out Result
	if strings.TrimSpace(text) == "" {
		return out
	}
	for _, s := range e.steps {
		out.union(s.run(text))
	}
	return out
}
