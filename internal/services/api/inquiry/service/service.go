// Package service implements the inquiry extraction facade over the core engines
package service

import (
	"context"
	"strings"

	"freightdesk/internal/core/inquiry"
	"freightdesk/internal/core/vocab"
	perr "freightdesk/internal/platform/errors"
	"freightdesk/internal/platform/logger"
	pstrings "freightdesk/internal/platform/strings"
	"freightdesk/internal/services/api/inquiry/domain"

	"github.com/google/uuid"
)

// Options tunes the service; see module.FromConfig
type Options struct {
	DefaultVariant    string
	MaxContainerLines int
}

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	vocab    *vocab.Vocabulary
	engines  map[string]*inquiry.Engine
	def      string
	maxLines int
}

var newID = uuid.NewString // seam

// New builds one engine per built-in variant
func New(v *vocab.Vocabulary, opt Options) (*Service, error) {
	s := &Service{
		vocab:    v,
		engines:  map[string]*inquiry.Engine{},
		maxLines: opt.MaxContainerLines,
	}
	for _, variant := range inquiry.Variants() {
		e, err := inquiry.New(v, variant)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "build %s engine", variant.Name)
		}
		s.engines[variant.Name] = e
	}

	def := opt.DefaultVariant
	if def == "" {
		def = inquiry.VariantFCL
	}
	dv, ok := inquiry.ParseVariant(def)
	if !ok {
		return nil, perr.InvalidArgf("unknown default variant %q", def)
	}
	s.def = dv.Name
	return s, nil
}

// Extract runs the requested variant over the text
func (s *Service) Extract(ctx context.Context, in domain.ExtractInput) (domain.ExtractionResponse, error) {
	id, e, r, err := s.run(ctx, in.Text, in.Variant)
	if err != nil {
		return domain.ExtractionResponse{}, err
	}
	return domain.ExtractionResponse{
		ID:      id,
		Variant: e.Variant().Name,
		Fields:  fields(r),
		Result:  r,
	}, nil
}

// Prefill extracts and merges the result onto the supplied form
func (s *Service) Prefill(ctx context.Context, in domain.PrefillInput) (domain.PrefillResponse, error) {
	id, e, r, err := s.run(ctx, in.Text, in.Variant)
	if err != nil {
		return domain.PrefillResponse{}, err
	}
	return domain.PrefillResponse{
		ID:      id,
		Variant: e.Variant().Name,
		Fields:  fields(r),
		Form:    in.Form.Apply(r, s.maxLines),
		Result:  r,
	}, nil
}

// Variants describes the built-in variants and their cargo vocabularies
func (s *Service) Variants(_ context.Context) []domain.VariantInfo {
	vs := inquiry.Variants()
	out := make([]domain.VariantInfo, 0, len(vs))
	for _, v := range vs {
		info := domain.VariantInfo{
			Name:       v.Name,
			CargoTable: v.CargoTable,
			Default:    v.Name == s.def,
		}
		for _, r := range v.Recognizers {
			info.Recognizers = append(info.Recognizers, string(r))
		}
		if v.Has(inquiry.RecognizeCargo) {
			rules, _ := s.vocab.CargoTable(v.CargoTable)
			for _, rule := range rules {
				info.CargoValues = append(info.CargoValues, rule.Value)
			}
		}
		out = append(out, info)
	}
	return out
}

// DefaultVariant is the variant used when a request names none
func (s *Service) DefaultVariant() string { return s.def }

func (s *Service) engine(name string) (*inquiry.Engine, error) {
	if strings.TrimSpace(name) == "" {
		name = s.def
	}
	v, ok := inquiry.ParseVariant(name)
	if !ok {
		return nil, perr.WithField(perr.InvalidArgf("unknown variant %q", name), "variant")
	}
	return s.engines[v.Name], nil
}

func (s *Service) run(ctx context.Context, text, variant string) (string, *inquiry.Engine, inquiry.Result, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil, inquiry.Result{}, perr.WithField(perr.Validationf("text must not be blank"), "text")
	}
	e, err := s.engine(variant)
	if err != nil {
		return "", nil, inquiry.Result{}, err
	}

	id := newID()
	r := e.Extract(text)

	log := logger.C(logger.WithExtraction(ctx, id))
	log.Debug().
		Str("variant", e.Variant().Name).
		Int("text_len", len(text)).
		Str("preview", pstrings.Clip(text, 48)).
		Strs("fields", fieldNames(r)).
		Msg("inquiry extracted")
	return id, e, r, nil
}

func fields(r inquiry.Result) []inquiry.Field {
	if f := r.Fields(); f != nil {
		return f
	}
	return []inquiry.Field{}
}

func fieldNames(r inquiry.Result) []string {
	fs := r.Fields()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}

var _ domain.ServicePort = (*Service)(nil)
