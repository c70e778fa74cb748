// Package logo turns a logo reference (local path or http(s) URL) into a data URI
// that can be embedded in the invoice HTML.
package logo

import (
	"context"
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/invocli/invocli/internal/cache"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/httpclient"
	"github.com/invocli/invocli/internal/logger"
)

// Loader resolves logos to data URIs
type Loader interface {
	Load(ctx context.Context, source string) (string, error)
}

type loader struct {
	client httpclient.Client
	cache  cache.Cache
	log    *logger.Logger
}

func NewLoader(client httpclient.Client, cache cache.Cache, log *logger.Logger) Loader {
	return &loader{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Load returns "data:<mime>;base64,<payload>" for source
func (l *loader) Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", ierr.NewError("empty logo source").
			WithHint("Logo must be a file path or an http(s) URL").
			Mark(ierr.ErrValidation)
	}

	key := cache.GenerateKey(cache.PrefixLogo, source)
	if cached, ok := l.cache.Get(ctx, key); ok {
		if uri, ok := cached.(string); ok {
			return uri, nil
		}
	}

	var (
		data     []byte
		declared string
		err      error
	)
	if isRemote(source) {
		data, declared, err = l.fetch(ctx, source)
	} else {
		data, err = readLocal(source)
		declared = mimeFromExtension(source)
	}
	if err != nil {
		return "", err
	}

	mime, err := detectMIME(data, declared)
	if err != nil {
		return "", ierr.WithError(err).
			WithHintf("%s does not look like an image", source).
			Mark(ierr.ErrValidation)
	}

	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	l.cache.Set(ctx, key, uri, 0)
	l.log.Debugw("loaded logo", "source", source, "mime", mime, "bytes", len(data))
	return uri, nil
}

func (l *loader) fetch(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := l.client.Send(ctx, &httpclient.Request{
		Method: http.MethodGet,
		URL:    url,
	})
	if err != nil {
		return nil, "", ierr.WithError(err).
			WithHintf("Could not download logo from %s", url).
			Mark(ierr.ErrHTTPClient)
	}
	contentType := headerValue(resp.Headers, "Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return resp.Body, strings.TrimSpace(contentType), nil
}

func readLocal(path string) ([]byte, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierr.WithError(err).
				WithHintf("Logo file %s does not exist", path).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("Could not read logo file %s", path).
			Mark(ierr.ErrSystem)
	}
	return data, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// detectMIME prefers the sniffed type; formats without magic bytes (svg) fall back
// to the declared type.
func detectMIME(data []byte, declared string) (string, error) {
	if len(data) == 0 {
		return "", ierr.NewError("logo is empty").Mark(ierr.ErrValidation)
	}
	if filetype.IsImage(data) {
		kind, err := filetype.Match(data)
		if err == nil && kind != filetype.Unknown {
			return kind.MIME.Value, nil
		}
	}
	if strings.HasPrefix(declared, "image/") {
		return declared, nil
	}
	return "", ierr.NewErrorf("unsupported logo type %q", declared).Mark(ierr.ErrValidation)
}

func mimeFromExtension(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "svg":
		return "image/svg+xml"
	case "jpg":
		return "image/jpeg"
	case "png", "jpeg", "gif", "webp", "bmp", "avif", "tiff":
		return "image/" + ext
	default:
		return ""
	}
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
