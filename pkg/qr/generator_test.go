package qr

import (
	"net/url"
	"testing"

	"github.com/cardlinkhq/cardlink-backend/pkg/config"
)

func TestNewURLGeneratorValidation(t *testing.T) {
	_, err := NewURLGenerator(config.QRConfig{}, config.PublicConfig{BaseURL: "https://cards.example.com"})
	if err == nil {
		t.Fatalf("expected error for missing endpoint")
	}

	_, err = NewURLGenerator(config.QRConfig{Endpoint: "https://api.qrserver.com/v1/create-qr-code/"}, config.PublicConfig{})
	if err == nil {
		t.Fatalf("expected error for missing base url")
	}
}

func TestImageURLComposition(t *testing.T) {
	gen, err := NewURLGenerator(
		config.QRConfig{Endpoint: "https://api.qrserver.com/v1/create-qr-code/", Size: "300x300"},
		config.PublicConfig{BaseURL: "https://cards.example.com/"},
	)
	if err != nil {
		t.Fatalf("build generator: %v", err)
	}

	if got := gen.PublicURL("john-doe"); got != "https://cards.example.com/john-doe" {
		t.Fatalf("unexpected public url: %q", got)
	}

	raw := gen.ImageURL("john-doe")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse image url: %v", err)
	}
	query := parsed.Query()
	if query.Get("size") != "300x300" {
		t.Fatalf("unexpected size param: %q", query.Get("size"))
	}
	if query.Get("data") != "https://cards.example.com/john-doe" {
		t.Fatalf("unexpected data param: %q", query.Get("data"))
	}
}
