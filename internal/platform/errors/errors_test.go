package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeTooLarge, http.StatusRequestEntityTooLarge},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeInvalidArgument.String() != "invalid_argument" || ErrorCode(77).String() != "unknown" {
		t.Fatalf("String() mismatch")
	}
}

func TestErrorRendering(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	src := stderrs.New("root")
	e := Wrapf(src, ErrorCodeUnavailable, "vocab %s", "missing")
	if got := e.Error(); got != "vocab missing: root" {
		t.Fatalf("Error() = %q", got)
	}
	withOp := WithOp(e, "inquiry.Extract")
	if got := withOp.Error(); got != "inquiry.Extract: vocab missing: root" {
		t.Fatalf("Error() with op = %q", got)
	}
	if stderrs.Unwrap(e) != src {
		t.Fatalf("Unwrap lost the cause")
	}
	if got, _ := As(withOp); got.Message() != "vocab missing" {
		t.Fatalf("Message() = %q", got.Message())
	}
}

func TestCopyOnWrite(t *testing.T) {
	base := InvalidArgf("unknown variant %q", "air")
	withField := WithField(base, "variant")
	withOp := WithOp(withField, "extract")

	if fe, ok := As(withField); !ok || fe.Field() != "variant" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(withOp); !ok || oe.Op() != "extract" || oe.Field() != "variant" {
		t.Fatalf("WithOp failed")
	}
	if b, _ := As(base); b.Field() != "" || b.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "x") != foreign {
		t.Fatalf("foreign errors must pass through")
	}
}

func TestWire(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}

	e := WithField(Validationf("text is required"), "text")
	if w := WireFrom(fmt.Errorf("handler: %w", e)); w.Code != ErrorCodeValidation || w.Message != "text is required" || w.Field != "text" {
		t.Fatalf("WireFrom(wrapped ours) = %+v", w)
	}

	// the cause of a wrapped error is never sent
	if w := WireFrom(Wrap(stderrs.New("secret path"), ErrorCodeUnavailable, "not ready")); w.Message != "not ready" {
		t.Fatalf("WireFrom leaked cause: %+v", w)
	}

	if w := WireFrom(stderrs.New("db password wrong")); w.Code != ErrorCodeUnknown || w.Message != "Internal Server Error" {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}

	if st, w := HTTP(JSONErrf("bad body")); st != http.StatusBadRequest || w.Code != ErrorCodeJSON {
		t.Fatalf("HTTP() = %d %+v", st, w)
	}
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", st)
	}
}

func TestSugarAndRoot(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{TooLargef("x"), ErrorCodeTooLarge},
		{New(ErrorCodeMethodNotAllowed, "x"), ErrorCodeMethodNotAllowed},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%v: code = %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
	if CodeOf(stderrs.New("x")) != ErrorCodeUnknown {
		t.Fatalf("foreign code should be Unknown")
	}

	src := stderrs.New("root")
	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got != src {
		t.Fatalf("Root() = %v", got)
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}
