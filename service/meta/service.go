package meta

import (
	"bytes"
	"context"

	"github.com/pingcap/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service reads and writes documents through afs, resolving relative URLs
// against a base URL. ${env.KEY} expressions in YAML documents are expanded
// before decoding.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// URL resolves URL against the base URL
func (s *Service) URL(URL string) string {
	if s.baseURL == "" || !url.IsRelative(URL) {
		return URL
	}
	return url.Join(s.baseURL, URL)
}

// Download returns raw content of URL
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	URL = s.URL(URL)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to download %v", URL)
	}
	return data, nil
}

// Upload writes data to URL
func (s *Service) Upload(ctx context.Context, URL string, data []byte) error {
	URL = s.URL(URL)
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data), s.options...); err != nil {
		return errors.Annotatef(err, "failed to upload %v", URL)
	}
	return nil
}

// Exists reports whether URL exists
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, s.URL(URL), s.options...)
}

// Load decodes the YAML document at URL into dest
func (s *Service) Load(ctx context.Context, URL string, dest interface{}) error {
	data, err := s.Download(ctx, URL)
	if err != nil {
		return err
	}
	expanded := expandEnvExpr(string(data))
	if err = yaml.Unmarshal([]byte(expanded), dest); err != nil {
		return errors.Annotatef(err, "failed to decode %v", s.URL(URL))
	}
	return nil
}

// New creates a meta service
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}
