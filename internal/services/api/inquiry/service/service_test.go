package service

import (
	"context"
	"slices"
	"sync"
	"testing"

	"freightdesk/internal/core/inquiry"
	"freightdesk/internal/core/vocab"
	perr "freightdesk/internal/platform/errors"
	kit "freightdesk/internal/platform/testkit"
	"freightdesk/internal/services/api/inquiry/domain"
)

const sample = `询价：从 CNSHA | Shanghai 到 DEHAM | Hamburg
马士基 2x40HC 1x20GP 3x40GP 18000 KGS 12 CBM 直达 欧洲 普货 FOB`

func newSvc(t *testing.T, opt Options) *Service {
	t.Helper()
	s, err := New(vocab.MustDefault(), opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	if s := newSvc(t, Options{}); s.DefaultVariant() != inquiry.VariantFCL {
		t.Fatalf("default = %q", s.DefaultVariant())
	}
	if s := newSvc(t, Options{DefaultVariant: "LCL"}); s.DefaultVariant() != inquiry.VariantLCL {
		t.Fatalf("default = %q", s.DefaultVariant())
	}
	if _, err := New(vocab.MustDefault(), Options{DefaultVariant: "air"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad default variant err = %v", err)
	}
	if _, err := New(nil, Options{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil vocabulary err = %v", err)
	}
}

func TestExtract_Variants(t *testing.T) {
	t.Parallel()

	s := newSvc(t, Options{})
	ctx := context.Background()

	fcl, err := s.Extract(ctx, domain.ExtractInput{Text: sample})
	if err != nil {
		t.Fatalf("fcl: %v", err)
	}
	if fcl.Variant != inquiry.VariantFCL || fcl.ID == "" {
		t.Fatalf("fcl meta = %q %q", fcl.Variant, fcl.ID)
	}
	if len(fcl.Result.ContainerInfo) != 3 || fcl.Result.Volume != "" {
		t.Fatalf("fcl result = %+v", fcl.Result)
	}

	lcl, err := s.Extract(ctx, domain.ExtractInput{Text: sample, Variant: " lcl "})
	if err != nil {
		t.Fatalf("lcl: %v", err)
	}
	if lcl.Variant != inquiry.VariantLCL || lcl.Result.ContainerInfo != nil || lcl.Result.Volume != "12" {
		t.Fatalf("lcl result = %+v", lcl.Result)
	}
	if !slices.Contains(lcl.Fields, inquiry.FieldVolume) || slices.Contains(lcl.Fields, inquiry.FieldContainerInfo) {
		t.Fatalf("lcl fields = %v", lcl.Fields)
	}
	if fcl.ID == lcl.ID {
		t.Fatal("extraction ids repeat")
	}
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	s := newSvc(t, Options{})
	cases := []struct {
		name  string
		in    domain.ExtractInput
		code  perr.ErrorCode
		field string
	}{
		{"empty", domain.ExtractInput{}, perr.ErrorCodeValidation, "text"},
		{"blank", domain.ExtractInput{Text: " \n\t　"}, perr.ErrorCodeValidation, "text"},
		{"unknown variant", domain.ExtractInput{Text: "2x40HC", Variant: "air"}, perr.ErrorCodeInvalidArgument, "variant"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Extract(context.Background(), c.in)
			e, ok := perr.As(err)
			if !ok || e.Code() != c.code || e.Field() != c.field {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestExtract_NoMatchHasEmptyFields(t *testing.T) {
	t.Parallel()

	got, err := newSvc(t, Options{}).Extract(context.Background(), domain.ExtractInput{Text: "hello there"})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.Fields == nil || len(got.Fields) != 0 || !got.Result.Empty() {
		t.Fatalf("got %+v", got)
	}
}

func TestExtract_IDSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &newID, kit.Sequence("id-1", "id-2"))

	s := newSvc(t, Options{})
	got, err := s.Extract(context.Background(), domain.ExtractInput{Text: "FOB"})
	if err != nil || got.ID != "id-1" {
		t.Fatalf("got %q, %v", got.ID, err)
	}
	pre, err := s.Prefill(context.Background(), domain.PrefillInput{Text: "FOB"})
	if err != nil || pre.ID != "id-2" {
		t.Fatalf("got %q, %v", pre.ID, err)
	}
}

func TestPrefill(t *testing.T) {
	t.Parallel()

	s := newSvc(t, Options{MaxContainerLines: 2})
	form := domain.InquiryForm{
		DeparturePort: "old port",
		DischargePort: "kept port",
		Route:         "kept route",
	}
	got, err := s.Prefill(context.Background(), domain.PrefillInput{
		Text: "到 USLAX | Los Angeles，1x20GP 2x40HC 3x45HC CIF",
		Form: form,
	})
	if err != nil {
		t.Fatalf("prefill: %v", err)
	}
	f := got.Form
	if f.DeparturePort != "USLAX | Los Angeles" || f.DischargePort != "kept port" || f.Route != "kept route" || f.ServiceTerms != "CIF" {
		t.Fatalf("form = %+v", f)
	}
	if len(f.ContainerInfo) != 2 || len(got.Result.ContainerInfo) != 3 {
		t.Fatalf("form lines = %d, result lines = %d", len(f.ContainerInfo), len(got.Result.ContainerInfo))
	}
	if _, err := s.Prefill(context.Background(), domain.PrefillInput{Text: "  "}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("blank prefill err = %v", err)
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	got := newSvc(t, Options{DefaultVariant: "lcl"}).Variants(context.Background())
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	byName := map[string]domain.VariantInfo{}
	for _, v := range got {
		byName[v.Name] = v
	}
	fcl, lcl := byName["fcl"], byName["lcl"]
	if fcl.Default || !lcl.Default {
		t.Fatalf("default flags fcl=%v lcl=%v", fcl.Default, lcl.Default)
	}
	if !slices.Contains(fcl.Recognizers, "containers") || slices.Contains(fcl.Recognizers, "volume") {
		t.Fatalf("fcl recognizers = %v", fcl.Recognizers)
	}
	if !slices.Contains(lcl.Recognizers, "volume") || slices.Contains(lcl.Recognizers, "containers") {
		t.Fatalf("lcl recognizers = %v", lcl.Recognizers)
	}
	if !slices.Equal(lcl.CargoValues, []string{"危险品", "冷冻品", "普货"}) {
		t.Fatalf("lcl cargo = %v", lcl.CargoValues)
	}
	if len(fcl.CargoValues) <= len(lcl.CargoValues) {
		t.Fatalf("fcl cargo table should be the wider one: %v", fcl.CargoValues)
	}
}

func TestExtract_Concurrent(t *testing.T) {
	t.Parallel()

	s := newSvc(t, Options{})
	want, _ := s.Extract(context.Background(), domain.ExtractInput{Text: sample})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Extract(context.Background(), domain.ExtractInput{Text: sample})
			if err != nil || got.Result.ShipCompany != want.Result.ShipCompany ||
				len(got.Result.ContainerInfo) != len(want.Result.ContainerInfo) {
				t.Errorf("concurrent extract diverged: %+v, %v", got.Result, err)
			}
		}()
	}
	wg.Wait()
}
