package maskedit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// DownloadName is the file name offered for exported images.
const DownloadName = "canvas-image.png"

// maxDuplicateNames bounds the "name (n).ext" search of DirDownloader.
const maxDuplicateNames = 10000

// Downloader delivers an exported file to the user.
type Downloader interface {
	Download(name string, data []byte) error
}

// DownloadFunc adapts a function to the Downloader interface.
type DownloadFunc func(name string, data []byte) error

// Download calls f(name, data).
func (f DownloadFunc) Download(name string, data []byte) error {
	return f(name, data)
}

// DirDownloader saves downloads into a directory. When a file with the
// requested name exists, the name gets a " (n)" suffix before the
// extension, as browsers do.
type DirDownloader struct {
	Dir string
}

// Download writes data to a new file in d.Dir.
func (d DirDownloader) Download(name string, data []byte) error {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < maxDuplicateNames; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(d.Dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path is user-provided intentionally
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("maskedit: download %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return fmt.Errorf("maskedit: download %s: %w", name, err)
		}
		return f.Close()
	}
	return fmt.Errorf("maskedit: download %s: too many files with this name", name)
}

// MaskPNG encodes the mask layer as PNG.
func (e *Editor) MaskPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.surface.Mask().EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("maskedit: encode mask: %w", err)
	}
	return buf.Bytes(), nil
}

// CompositePNG encodes the base image with the mask drawn over it as PNG.
func (e *Editor) CompositePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodePNG(&buf, e.surface.Composite()); err != nil {
		return nil, fmt.Errorf("maskedit: encode composite: %w", err)
	}
	return buf.Bytes(), nil
}

// Export downloads the mask image and then the composite image, both
// under DownloadName.
func (e *Editor) Export(d Downloader) error {
	mask, err := e.MaskPNG()
	if err != nil {
		return err
	}
	composite, err := e.CompositePNG()
	if err != nil {
		return err
	}
	if err := d.Download(DownloadName, mask); err != nil {
		return err
	}
	if err := d.Download(DownloadName, composite); err != nil {
		return err
	}
	e.logger().Info("maskedit: exported", "mask_bytes", len(mask), "composite_bytes", len(composite))
	return nil
}

// WritePDF writes a two-page PDF to w: the composite image, then the
// mask alone. Pages measure one point per pixel.
func (e *Editor) WritePDF(w io.Writer) error {
	composite, err := e.CompositePNG()
	if err != nil {
		return err
	}
	mask, err := e.MaskPNG()
	if err != nil {
		return err
	}

	width, height := float64(e.Width()), float64(e.Height())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("maskedit", false)
	pdf.SetSubject(e.id, false)

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	for _, page := range []struct {
		name string
		data []byte
	}{
		{"composite", composite},
		{"mask", mask},
	} {
		pdf.AddPage()
		pdf.RegisterImageOptionsReader(page.name, opt, bytes.NewReader(page.data))
		pdf.ImageOptions(page.name, 0, 0, width, height, false, opt, 0, "")
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("maskedit: write pdf: %w", err)
	}
	e.logger().Info("maskedit: pdf written", "pages", pdf.PageCount())
	return nil
}
