package uploadsvc

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupTestService(t *testing.T) (*Service, *httptest.Server) {
	t.Helper()
	s := New(Config{Dir: t.TempDir()})
	srv := httptest.NewServer(s.Echo)
	t.Cleanup(srv.Close)
	return s, srv
}

func postUpload(t *testing.T, url, fileName, partName string, content []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if fileName != "" {
		if err := w.WriteField("fileName", fileName); err != nil {
			t.Fatal(err)
		}
	}
	if partName != "" {
		part, err := w.CreateFormFile("file", partName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(url+"/api/assets-upload/upload", w.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestUploadStoresFile(t *testing.T) {
	s, srv := setupTestService(t)

	resp := postUpload(t, srv.URL, "My Logo", "logo.txt", []byte("hello"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var res Response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.FileName != "My Logo" {
		t.Errorf("fileName = %q, want My Logo", res.FileName)
	}
	if !strings.HasSuffix(res.FileURL, "/uploads/my-logo.txt") {
		t.Errorf("fileUrl = %q, want .../uploads/my-logo.txt", res.FileURL)
	}
	if _, err := time.Parse(time.RFC3339Nano, res.UploadedAt); err != nil {
		t.Errorf("uploadedAt %q not RFC3339: %v", res.UploadedAt, err)
	}

	data, err := os.ReadFile(filepath.Join(s.Config.Dir, "my-logo.txt"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("stored content = %q, want hello", data)
	}
}

func TestUploadRequiresFileAndName(t *testing.T) {
	_, srv := setupTestService(t)

	resp := postUpload(t, srv.URL, "", "f.txt", []byte("x"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing fileName: status = %d, want 400", resp.StatusCode)
	}

	resp = postUpload(t, srv.URL, "name", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing file: status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadCollidingNamesGetSuffix(t *testing.T) {
	s, srv := setupTestService(t)

	first := postUpload(t, srv.URL, "doc.txt", "a.txt", []byte("one"))
	if first.StatusCode != http.StatusOK {
		t.Fatalf("first upload status = %d", first.StatusCode)
	}
	io.Copy(io.Discard, first.Body)

	second := postUpload(t, srv.URL, "doc.txt", "b.txt", []byte("two"))
	if second.StatusCode != http.StatusOK {
		t.Fatalf("second upload status = %d", second.StatusCode)
	}
	var res Response
	if err := json.NewDecoder(second.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(res.FileURL, "/uploads/doc-2.txt") {
		t.Errorf("fileUrl = %q, want .../uploads/doc-2.txt", res.FileURL)
	}

	data, err := os.ReadFile(filepath.Join(s.Config.Dir, "doc-2.txt"))
	if err != nil {
		t.Fatalf("suffixed file missing: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("stored content = %q, want two", data)
	}
}

func TestUploadDownscalesWideImages(t *testing.T) {
	s, srv := setupTestService(t)

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2000, 20))); err != nil {
		t.Fatal(err)
	}

	resp := postUpload(t, srv.URL, "banner.png", "banner.png", buf.Bytes())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var res Response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(res.FileURL, "/uploads/banner.jpg") {
		t.Errorf("fileUrl = %q, want .../uploads/banner.jpg (re-encoded)", res.FileURL)
	}

	f, err := os.Open(filepath.Join(s.Config.Dir, "banner.jpg"))
	if err != nil {
		t.Fatalf("stored image missing: %v", err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode stored image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if cfg.Width != maxImageWidth {
		t.Errorf("width = %d, want %d", cfg.Width, maxImageWidth)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello World", "hello-world"},
		{"  Cafe  2026!  ", "cafe-2026"},
		{"---", ""},
		{"UPPER", "upper"},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Errorf("slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
