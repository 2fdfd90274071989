package maskedit

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	xdraw "golang.org/x/image/draw"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("maskedit: empty image")

// DecodeImage decodes a PNG, JPEG, GIF, WebP, BMP or TIFF image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("maskedit: decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("maskedit: decode %s image: %w", format, ErrEmptyImage)
	}
	return img, nil
}

// OpenImage decodes the image file at path.
func OpenImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("maskedit: open image: %w", err)
	}
	defer f.Close()
	return DecodeImage(f)
}

// FetchImage downloads and decodes the image at url. A nil client means
// http.DefaultClient. Responses outside the 2xx range are errors.
func FetchImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("maskedit: fetch image: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("maskedit: fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("maskedit: fetch image %s: unexpected status %s", url, resp.Status)
	}
	return DecodeImage(resp.Body)
}

// LoadBaseImage fetches the image at url with the configured HTTP client
// and makes it the base layer.
func (e *Editor) LoadBaseImage(ctx context.Context, url string) error {
	img, err := FetchImage(ctx, e.opts.httpClient, url)
	if err != nil {
		return err
	}
	if err := e.SetBaseImage(img); err != nil {
		return err
	}
	e.logger().Info("maskedit: base image loaded", "url", url)
	return nil
}

// SetBaseImage scales img with bilinear interpolation to the surface
// size and replaces the base layer with it. The mask is not affected.
func (e *Editor) SetBaseImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	base := e.surface.Base()
	xdraw.ApproxBiLinear.Scale(base.img, base.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	e.logger().Debug("maskedit: base image set",
		"src_width", img.Bounds().Dx(), "src_height", img.Bounds().Dy())
	return nil
}
