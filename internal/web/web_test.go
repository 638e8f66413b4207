package web

import (
	"bytes"
	"testing"
)

func TestNewRendererParsesAllTemplates(t *testing.T) {
	if _, err := NewRenderer(); err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, "no-such-page", nil); err == nil {
		t.Error("expected an error for an unknown page")
	}
}

func TestFormatChl(t *testing.T) {
	if got := formatChl(nil); got != "–" {
		t.Errorf("nil = %q", got)
	}
	v := 1.234
	if got := formatChl(&v); got != "1.23" {
		t.Errorf("1.234 = %q", got)
	}
}
