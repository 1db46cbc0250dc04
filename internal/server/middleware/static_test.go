package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
)

type countingFS struct {
	inner  http.FileSystem
	opened *atomic.Int64
	closed *atomic.Int64
}

func (c countingFS) Open(name string) (http.File, error) {
	f, err := c.inner.Open(name)
	if err != nil {
		return nil, err
	}
	c.opened.Add(1)
	return countingFile{File: f, closed: c.closed}, nil
}

type countingFile struct {
	http.File
	closed *atomic.Int64
}

func (c countingFile) Close() error {
	c.closed.Add(1)
	return c.File.Close()
}

func TestStaticClosesEveryOpenedFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var opened, closed atomic.Int64
	fs := countingFS{inner: http.Dir(dir), opened: &opened, closed: &closed}

	r := gin.New()
	r.Use(static("", fs))

	for _, path := range []string{"/style.css", "/style.css", "/missing.css"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if opened.Load() == 0 {
		t.Fatal("expected the static middleware to open served files")
	}
	if got, want := closed.Load(), opened.Load(); got != want {
		t.Errorf("closed %d of %d opened files", got, want)
	}
}
