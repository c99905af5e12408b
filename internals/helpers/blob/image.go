package blob

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	defaultMaxW    = 1600
	defaultMaxH    = 1600
	defaultQuality = 80
	thumbSize      = 320
)

func decodeImage(data []byte, filename string) (image.Image, error) {
	ct := http.DetectContentType(data)
	var (
		img image.Image
		err error
	)
	switch ct {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/gif":
		img, err = gif.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		// fallback by extension
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(data))
		case ".png":
			img, err = png.Decode(bytes.NewReader(data))
		case ".gif":
			img, err = gif.Decode(bytes.NewReader(data))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(data))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s", ct)
		}
	}
	return img, err
}

// downscaleIfNeeded: resize keep-aspect dengan CatmullRom.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// convertToWebP: decode → downscale → encode webp lossy.
func convertToWebP(data []byte, filename string) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, defaultMaxW, defaultMaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: defaultQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// makeThumbWebP: varian kecil untuk listing (fit dalam thumbSize).
func makeThumbWebP(data []byte, filename string) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}
	th := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, th, &webp.Options{Lossless: false, Quality: defaultQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
