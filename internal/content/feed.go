// Package content provides the read-only portfolio dataset: profile copy,
// roles, certificates, qualifications and ERP systems. The default feed is
// embedded; an alternative YAML file can be loaded in its place.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/dgilligan/folio/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed feed.yaml
var defaultFeedYAML []byte

var (
	ErrRoleNotFound        = errors.New("role not found")
	ErrCertificateNotFound = errors.New("certificate not found")
)

// Feed is the complete dataset rendered by the portfolio. Values are
// never mutated after load.
type Feed struct {
	Profile          domain.Profile         `yaml:"profile"`
	Roles            []domain.Role          `yaml:"roles"`
	PreviousPartTime []string               `yaml:"previous_part_time"`
	ErpSystems       []domain.ErpSystem     `yaml:"erp_systems"`
	Qualifications   []domain.Qualification `yaml:"qualifications"`
	Certificates     []domain.Certificate   `yaml:"certificates"`
}

// Default parses the embedded feed. The embedded file is covered by tests,
// so a parse failure here is a build defect.
func Default() *Feed {
	f, err := Parse(defaultFeedYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded feed: %v", err))
	}
	return f
}

// Parse decodes a YAML feed.
func Parse(data []byte) (*Feed, error) {
	var f Feed
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing content feed: %w", err)
	}
	return &f, nil
}

// LoadFile reads and parses a YAML feed from disk.
func LoadFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content feed: %w", err)
	}
	return Parse(data)
}

// Load returns the feed at path, or the embedded feed when path is empty.
func Load(path string) (*Feed, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// RoleByID returns the role with the given id.
func (f *Feed) RoleByID(id string) (domain.Role, error) {
	for _, r := range f.Roles {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Role{}, fmt.Errorf("role %q: %w", id, ErrRoleNotFound)
}

// CertificateByTitle returns the certificate with the given title.
func (f *Feed) CertificateByTitle(title string) (domain.Certificate, error) {
	for _, c := range f.Certificates {
		if c.Title == title {
			return c, nil
		}
	}
	return domain.Certificate{}, fmt.Errorf("certificate %q: %w", title, ErrCertificateNotFound)
}

// PresentableCertificates returns the certificates that can open a detail
// modal, in feed order.
func (f *Feed) PresentableCertificates() []domain.Certificate {
	out := make([]domain.Certificate, 0, len(f.Certificates))
	for _, c := range f.Certificates {
		if c.HasImage() {
			out = append(out, c)
		}
	}
	return out
}
