// Package uploadsvc is the companion upload endpoint for the pubadmin
// console. It accepts multipart {file, fileName} posts, stores the file on
// disk (downscaling oversized images), and answers with the metadata the
// console persists as an asset document.
package uploadsvc

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 80
)

// Config holds the upload service settings.
type Config struct {
	Addr    string `env:"ADDR"`       // Listen address (default ":4000")
	BaseURL string `env:"BASE_URL"`   // Public URL prefix for stored files (default "http://localhost:4000")
	Dir     string `env:"UPLOAD_DIR"` // Storage directory (default "data/uploads")
}

// ParseEnv loads a Config from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":4000"
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:4000"
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.Dir == "" {
		c.Dir = "data/uploads"
	}
}

// Response is the JSON body returned on a successful upload.
type Response struct {
	FileName   string `json:"fileName"`
	FileURL    string `json:"fileUrl"`
	UploadedAt string `json:"uploadedAt"`
}

// Service is the upload endpoint.
type Service struct {
	Config Config
	Echo   *echo.Echo
}

// New creates a Service with routes and middleware configured.
func New(cfg Config) *Service {
	cfg.setDefaults()
	s := &Service{Config: cfg, Echo: echo.New()}

	e := s.Echo
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.BodyLimit("10M"))

	e.POST("/api/assets-upload/upload", s.handleUpload)
	e.Static("/uploads", cfg.Dir)

	return s
}

// Start runs the HTTP server.
func (s *Service) Start() error {
	if err := s.Echo.Start(s.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Service) handleUpload(c echo.Context) error {
	fileName := strings.TrimSpace(c.FormValue("fileName"))
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.String(http.StatusBadRequest, "No file provided")
	}
	if fileName == "" {
		return c.String(http.StatusBadRequest, "File name required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	stored := storedName(fileName, fileHeader.Filename)

	// Images wider than maxImageWidth are downscaled and re-encoded as JPEG;
	// everything else is stored verbatim.
	if resized, ok := downscaleImage(data); ok {
		data = resized
		stored = strings.TrimSuffix(stored, filepath.Ext(stored)) + ".jpg"
	}

	if err := os.MkdirAll(s.Config.Dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	stored = s.ensureUniqueName(stored)
	if err := os.WriteFile(filepath.Join(s.Config.Dir, stored), data, 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}

	return c.JSON(http.StatusOK, Response{
		FileName:   fileName,
		FileURL:    s.fileURL(stored),
		UploadedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Service) fileURL(stored string) string {
	return s.Config.BaseURL + path.Join("/uploads", url.PathEscape(stored))
}

// storedName derives an on-disk name: the requested display name slugified,
// keeping the original upload's extension when the display name has none.
func storedName(displayName, originalName string) string {
	ext := filepath.Ext(displayName)
	if ext == "" {
		ext = filepath.Ext(originalName)
	}
	base := slugify(strings.TrimSuffix(displayName, filepath.Ext(displayName)))
	if base == "" {
		base = "file"
	}
	return base + strings.ToLower(ext)
}

// ensureUniqueName appends a counter while the name collides on disk.
func (s *Service) ensureUniqueName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	counter := 1
	for {
		if _, err := os.Stat(filepath.Join(s.Config.Dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		counter++
		candidate = fmt.Sprintf("%s-%d%s", base, counter, ext)
	}
}

// downscaleImage reports whether data decoded as an image wider than
// maxImageWidth; if so it returns a JPEG re-encode at the capped width.
func downscaleImage(data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageWidth {
		return nil, false
	}

	newH := h * maxImageWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// slugify converts a name to a URL-safe slug.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
