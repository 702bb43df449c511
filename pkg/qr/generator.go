package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cardlinkhq/cardlink-backend/pkg/config"
)

// Generator produces an image reference for a profile's public URL. It is
// called exactly once, at profile creation.
type Generator interface {
	ImageURL(username string) string
}

// URLGenerator composes a hosted QR image URL pointing at the public card.
// The image itself is rendered lazily by the external service; nothing is
// fetched or stored server-side.
type URLGenerator struct {
	endpoint string
	size     string
	baseURL  string
}

// NewURLGenerator builds a generator from QR and public config.
func NewURLGenerator(qrCfg config.QRConfig, publicCfg config.PublicConfig) (*URLGenerator, error) {
	endpoint := strings.TrimSpace(qrCfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("qr endpoint is required")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid qr endpoint: %w", err)
	}
	base := strings.TrimRight(strings.TrimSpace(publicCfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("public base url is required")
	}
	size := strings.TrimSpace(qrCfg.Size)
	if size == "" {
		size = "300x300"
	}
	return &URLGenerator{
		endpoint: endpoint,
		size:     size,
		baseURL:  base,
	}, nil
}

// PublicURL returns the card URL a QR code resolves to.
func (g *URLGenerator) PublicURL(username string) string {
	return g.baseURL + "/" + username
}

// ImageURL returns the hosted QR image reference for the given username.
func (g *URLGenerator) ImageURL(username string) string {
	query := url.Values{}
	query.Set("size", g.size)
	query.Set("data", g.PublicURL(username))
	return g.endpoint + "?" + query.Encode()
}
