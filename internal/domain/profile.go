package domain

// Profile holds the hero, about and contact copy shown around the
// structured sections.
type Profile struct {
	Name         string   `yaml:"name"`
	Tagline      string   `yaml:"tagline"`
	Availability string   `yaml:"availability"`
	Headline     string   `yaml:"headline"`
	CurrentRole  string   `yaml:"current_role"`
	CurrentFocus string   `yaml:"current_focus"`
	About        []string `yaml:"about"`
	ContactBlurb string   `yaml:"contact_blurb"`
	Email        string   `yaml:"email"`
}

// DisplayName returns the profile name, falling back to a placeholder so
// headers never render empty.
func (p Profile) DisplayName() string {
	return CoalesceStr(p.Name, "Portfolio")
}
