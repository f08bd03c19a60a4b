// Package qr renders omenu:// links as QR code images. It is a collaborator
// on top of the codec; the core document model never depends on it.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/openmenu/omenu"
	"github.com/openmenu/omenu/codec"
)

// DefaultSize is the rendered image edge in pixels.
const DefaultSize = 256

// Generator renders a URL into an image payload. Implementations other than
// the built-in PNG one can target SVG, terminals, or printers.
type Generator interface {
	Generate(url string) ([]byte, error)
}

// PNGGenerator renders PNG QR codes with medium error correction.
type PNGGenerator struct {
	// Size is the image edge in pixels; zero means DefaultSize.
	Size int
}

// Generate renders the URL as a PNG image.
func (g PNGGenerator) Generate(url string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr: encoding %q: %w", url, err)
	}
	return png, nil
}

// ForIntent encodes the intent as a URL and renders it with g.
func ForIntent(g Generator, intent codec.OrderIntent) ([]byte, error) {
	url, err := codec.EncodeURL(intent)
	if err != nil {
		return nil, err
	}
	return g.Generate(url)
}

// ForDocument renders the document's deep link with g.
func ForDocument(g Generator, doc *omenu.Document) ([]byte, error) {
	return g.Generate(doc.DeepLink())
}
