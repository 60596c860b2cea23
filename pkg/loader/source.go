package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Source opens the raw bytes of a model resource
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSource reads models from the local filesystem.
//
// Catalogue paths such as "/models/bookshelf.stl" are rooted at Root unless
// the path exists as given. Relative paths are always joined to Root.
type FileSource struct {
	Root string
}

// Resolve maps path to a filesystem location
func (s FileSource) Resolve(path string) string {
	if s.Root == "" {
		return path
	}
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(s.Root, filepath.FromSlash(path))
}

// Open opens the resolved file
func (s FileSource) Open(_ context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(s.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// HTTPSource fetches models over http and https
type HTTPSource struct {
	Client *http.Client
}

// Open issues a GET request for url
func (s HTTPSource) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// MultiSource routes URLs to HTTP and everything else to Files
type MultiSource struct {
	Files FileSource
	HTTP  HTTPSource
}

// Open dispatches on the path scheme
func (s MultiSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if IsURL(path) {
		return s.HTTP.Open(ctx, path)
	}
	return s.Files.Open(ctx, path)
}

// Resolve maps non-URL paths through Files
func (s MultiSource) Resolve(path string) string {
	if IsURL(path) {
		return path
	}
	return s.Files.Resolve(path)
}

// IsURL reports whether path is an http or https URL
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
