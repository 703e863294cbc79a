package domain

import "strings"

// Role is one entry of the work history. ID is the identity used for
// lookups and selection; everything else is display data.
type Role struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Company  string   `yaml:"company"`
	Location string   `yaml:"location"`
	Dates    string   `yaml:"dates"`
	Bullets  []string `yaml:"bullets"`
}

// Summary returns the first bullet, used as the teaser on a role card.
func (r Role) Summary() string {
	if len(r.Bullets) == 0 {
		return ""
	}
	return r.Bullets[0]
}

// Subtitle joins company and location for the card header.
func (r Role) Subtitle() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{r.Company, r.Location} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}
