package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	_ "image/png" // registered for image.Decode
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
)

// validImageExtensions are the file types accepted for avatars and post
// headers.
var validImageExtensions = map[string]struct{}{
	".webp": {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".svg":  {},
	".bmp":  {},
}

type imageService struct {
	cfg    config.Image
	logger *logger.Logger
}

// NewImageService constructs an [ImageService] with the configured size and
// dimension limits.
func NewImageService(cfg config.Image, logger *logger.Logger) ImageService {
	return &imageService{cfg: cfg, logger: logger}
}

func (s *imageService) Load(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		data, err := os.ReadFile(path)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("image read timed out: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("failed to read image file: %w", res.err)
		}
		return s.Process(ctx, filepath.Base(path), res.data)
	}
}

func (s *imageService) Process(ctx context.Context, filename string, data []byte) (string, error) {
	if err := s.validateFile(filename, data); err != nil {
		return "", err
	}

	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		return s.processSVG(data)
	}

	img, err := s.decode(ctx, filename, data)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return "", ErrImageBadDims
	}
	if width > s.cfg.MaxDimension || height > s.cfg.MaxDimension {
		return "", ErrImageDimsTooLarge
	}

	scaled := s.scale(img, width, height)

	dataURL, err := s.encodeJPEG(scaled)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("file", filename).
		Int("width", scaled.Bounds().Dx()).
		Int("height", scaled.Bounds().Dy()).
		Int("encodedKB", len(dataURL)/1024).
		Msg("image processed")
	return dataURL, nil
}

func (s *imageService) validateFile(filename string, data []byte) error {
	if int64(len(data)) < s.cfg.MinBytes {
		return ErrImageTooSmall
	}
	if int64(len(data)) > s.cfg.MaxBytes {
		return ErrImageTooLarge
	}

	name := strings.ToLower(filename)
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return ErrImageBadName
	}

	if _, ok := validImageExtensions[filepath.Ext(name)]; !ok {
		return fmt.Errorf("%w: %s", ErrImageBadFormat, filepath.Ext(name))
	}

	return nil
}

// decode runs the format decoder under the configured timeout so a
// pathological file cannot stall the caller.
func (s *imageService) decode(ctx context.Context, filename string, data []byte) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.DecodeTimeout)
	defer cancel()

	type result struct {
		img image.Image
		err error
	}
	done := make(chan result, 1)

	go func() {
		var (
			img image.Image
			err error
		)
		switch filepath.Ext(strings.ToLower(filename)) {
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(data))
		case ".bmp":
			img, err = bmp.Decode(bytes.NewReader(data))
		case ".gif":
			img, err = gif.Decode(bytes.NewReader(data))
		default:
			img, _, err = image.Decode(bytes.NewReader(data))
		}
		done <- result{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("image decode timed out: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("failed to load image: %w", res.err)
		}
		return res.img, nil
	}
}

// scale fits the image into the target bounding box, preserving aspect
// ratio, over a white background so transparency flattens cleanly.
func (s *imageService) scale(img image.Image, width, height int) image.Image {
	maxDim := s.cfg.TargetDimension

	newWidth, newHeight := width, height
	if width > height && width > maxDim {
		newHeight = height * maxDim / width
		newWidth = maxDim
	} else if height > maxDim {
		newWidth = width * maxDim / height
		newHeight = maxDim
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// encodeJPEG re-encodes the image, stepping quality down from 80 to 10
// until the result fits the configured budget.
func (s *imageService) encodeJPEG(img image.Image) (string, error) {
	var buf bytes.Buffer
	for quality := 80; quality >= 10; quality -= 10 {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return "", fmt.Errorf("%w: %v", ErrImageEncode, err)
		}

		encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
		if len(encoded)/1024 <= s.cfg.TargetEncodedKB || quality == 10 {
			return "data:image/jpeg;base64," + encoded, nil
		}
	}

	return "", ErrImageEncode
}

var (
	svgScriptTags    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	svgEventHandlers = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	svgJSProtocol    = regexp.MustCompile(`(?i)javascript:`)
)

// processSVG embeds the vector file as-is after stripping executable
// content. SVG never goes through the raster pipeline.
func (s *imageService) processSVG(data []byte) (string, error) {
	content := string(data)
	if !strings.Contains(strings.ToLower(content), "<svg") {
		return "", ErrNotSVG
	}

	content = svgScriptTags.ReplaceAllString(content, "")
	content = svgEventHandlers.ReplaceAllString(content, "")
	content = svgJSProtocol.ReplaceAllString(content, "")

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(content)), nil
}
