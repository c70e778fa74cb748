package logo_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/invocli/invocli/internal/cache"
	"github.com/invocli/invocli/internal/config"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
	"github.com/invocli/invocli/internal/logo"
	"github.com/invocli/invocli/internal/testutil"
	"github.com/stretchr/testify/suite"
)

// smallest byte sequence filetype recognises as PNG
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type LoaderSuite struct {
	suite.Suite
	ctx    context.Context
	client *testutil.MockHTTPClient
	cache  *cache.InMemoryCache
	loader logo.Loader
	dir    string
}

func TestLoader(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = testutil.NewMockHTTPClient()
	s.cache = cache.NewInMemoryCache(config.GetDefaultConfig(), logger.NewNopLogger())
	s.loader = logo.NewLoader(s.client, s.cache, logger.NewNopLogger())
	s.dir = s.T().TempDir()
}

func (s *LoaderSuite) TestLocalPNG() {
	path := filepath.Join(s.dir, "logo.dat")
	s.Require().NoError(os.WriteFile(path, pngBytes, 0o644))

	uri, err := s.loader.Load(s.ctx, path)
	s.Require().NoError(err)
	s.Equal("data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes), uri)
}

func (s *LoaderSuite) TestLocalSVGFallsBackToExtension() {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"></svg>`)
	path := filepath.Join(s.dir, "logo.svg")
	s.Require().NoError(os.WriteFile(path, svg, 0o644))

	uri, err := s.loader.Load(s.ctx, path)
	s.Require().NoError(err)
	s.Equal("data:image/svg+xml;base64,"+base64.StdEncoding.EncodeToString(svg), uri)
}

func (s *LoaderSuite) TestLocalMissing() {
	_, err := s.loader.Load(s.ctx, filepath.Join(s.dir, "nope.png"))
	s.True(ierr.IsNotFound(err))
}

func (s *LoaderSuite) TestLocalNotAnImage() {
	path := filepath.Join(s.dir, "notes.txt")
	s.Require().NoError(os.WriteFile(path, []byte("hello"), 0o644))

	_, err := s.loader.Load(s.ctx, path)
	s.True(ierr.IsValidation(err))
}

func (s *LoaderSuite) TestRemote() {
	s.client.RegisterResponse("/logo", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       pngBytes,
		Headers:    map[string]string{"Content-Type": "application/octet-stream"},
	})

	uri, err := s.loader.Load(s.ctx, "https://cdn.example.com/logo")
	s.Require().NoError(err)
	s.Equal("data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes), uri)
	s.Equal(1, s.client.Calls())

	// second load is served from the cache
	_, err = s.loader.Load(s.ctx, "https://cdn.example.com/logo")
	s.Require().NoError(err)
	s.Equal(1, s.client.Calls())
}

func (s *LoaderSuite) TestRemoteDeclaredType() {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	s.client.RegisterResponse("/brand.svg", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       svg,
		Headers:    map[string]string{"content-type": "image/svg+xml; charset=utf-8"},
	})

	uri, err := s.loader.Load(s.ctx, "http://example.com/brand.svg")
	s.Require().NoError(err)
	s.Equal("data:image/svg+xml;base64,"+base64.StdEncoding.EncodeToString(svg), uri)
}

func (s *LoaderSuite) TestRemoteNotFound() {
	_, err := s.loader.Load(s.ctx, "https://example.com/missing.png")
	s.True(ierr.IsHTTPClient(err))
}

func (s *LoaderSuite) TestEmptySource() {
	_, err := s.loader.Load(s.ctx, "  ")
	s.True(ierr.IsValidation(err))
}

func (s *LoaderSuite) TestMimeFromExtension() {
	s.Equal("image/jpeg", logo.MimeFromExtension("a/b/logo.JPG"))
	s.Equal("image/webp", logo.MimeFromExtension("logo.webp"))
	s.Equal("", logo.MimeFromExtension("logo"))
}
