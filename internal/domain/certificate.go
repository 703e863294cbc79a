package domain

import "strings"

// Certificate is a course or certification record. Title is its identity
// and must be unique within a feed.
type Certificate struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Provider string `yaml:"provider"`
	Note     string `yaml:"note,omitempty"`
	Image    string `yaml:"image,omitempty"`
}

// HasImage reports whether the certificate carries an image path.
// Only certificates with an image can be presented in a detail modal.
func (c Certificate) HasImage() bool {
	return strings.TrimSpace(c.Image) != ""
}
