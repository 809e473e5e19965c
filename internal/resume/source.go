package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// MaxSize caps how much of the résumé is read.
const MaxSize = 20 << 20

// ErrTooLarge is returned for a résumé bigger than MaxSize.
var ErrTooLarge = errors.New("resume exceeds size limit")

// Source fetches the raw résumé bytes.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource fetches the résumé from a remote URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.URL, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, ErrTooLarge)
	}
	return data, nil
}

// FSSource reads the résumé from a file system, usually the embedded static
// assets.
type FSSource struct {
	FS   fs.FS
	Name string
}

func (s FSSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.FS, s.Name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Name, err)
	}
	return data, nil
}

// NewSource picks a source for url. Absolute http(s) URLs are fetched
// remotely; paths under staticPrefix are read from static.
func NewSource(url string, staticPrefix string, static fs.FS) (Source, error) {
	switch {
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return HTTPSource{URL: url}, nil
	case strings.HasPrefix(url, staticPrefix):
		return FSSource{FS: static, Name: strings.TrimPrefix(url, staticPrefix)}, nil
	default:
		return nil, fmt.Errorf("unsupported resume url %q", url)
	}
}
