// Package source opens GIF streams from the local filesystem or over HTTP.
package source

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/tauraamui/gifreel/pkg/log"
	"github.com/tauraamui/xerror"
)

const Unavailable = xerror.Kind("source_unavailable")

var ErrUnavailable = errors.New("source unavailable")

var fs afero.Fs = afero.NewOsFs()

var client = &http.Client{Timeout: 30 * time.Second}

// Opener resolves a name into a readable stream. Callers close it.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

func New(fs afero.Fs, client *http.Client) Opener {
	if client == nil {
		client = http.DefaultClient
	}
	return opener{fs: fs, client: client}
}

// Open resolves name with the package's filesystem and HTTP client. name is
// a path, a file: URL or an http(s) URL.
func Open(name string) (io.ReadCloser, error) {
	return New(fs, client).Open(name)
}

type opener struct {
	fs     afero.Fs
	client *http.Client
}

func (o opener) Open(name string) (io.ReadCloser, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, unavailable(name, errors.New("empty name"))
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return o.fetch(name)
	case strings.HasPrefix(lower, "file:"):
		u, err := url.Parse(name)
		if err != nil {
			return nil, unavailable(name, err)
		}
		path := u.Path
		if len(path) == 0 {
			path = u.Opaque
		}
		return o.file(name, path)
	default:
		return o.file(name, name)
	}
}

func (o opener) file(name, path string) (io.ReadCloser, error) {
	log.Debug("Opening file source: %s", path)
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, unavailable(name, err)
	}
	if info, err := f.Stat(); err == nil && info.IsDir() {
		f.Close()
		return nil, unavailable(name, errors.New("is a directory"))
	}
	return f, nil
}

func (o opener) fetch(name string) (io.ReadCloser, error) {
	log.Debug("Fetching remote source: %s", name)
	resp, err := o.client.Get(name)
	if err != nil {
		return nil, unavailable(name, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, xerror.Errorf("unable to fetch %s: %w", name, ErrUnavailable).
			AsKind(Unavailable).
			WithParam("status", resp.StatusCode)
	}
	return resp.Body, nil
}

func unavailable(name string, cause error) error {
	return xerror.Errorf("unable to open %s: %v: %w", name, cause, ErrUnavailable).AsKind(Unavailable)
}
