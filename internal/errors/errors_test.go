package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E001")
	if err.Category != CategoryConvert {
		t.Errorf("Category = %v, want convert", err.Category)
	}
	if err.Message == "" || err.DocURL == "" {
		t.Errorf("template fields not populated: %+v", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, "E001: ") {
		t.Errorf("Error() = %q, want code prefix", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" || err.Message != "Unknown error" {
		t.Errorf("New(E999) = %+v", err)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("C002").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "C001") != nil {
		t.Error("FromError(nil) != nil")
	}

	original := New("C001")
	if got := FromError(original, "C002"); got != original {
		t.Error("FromError rewrapped an existing DomifyError")
	}

	wrapped := FromError(stderrors.New("boom"), "C002")
	if wrapped.Code != "C002" || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("C001").WithSuggestion("pass --config").Format()
	for _, want := range []string{"ERROR", "C001", "hint: pass --config", "docs:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() emitted ANSI codes with colors disabled")
	}
}
