package content

import (
	"fmt"
	"strings"
)

// Validate checks the feed's identity invariants: role ids and certificate
// titles must be non-empty and unique. Returns every problem found.
// The portfolio itself never calls this; it backs `folio feed check`.
func Validate(f *Feed) []error {
	var errs []error
	errs = append(errs, validateRoles(f)...)
	errs = append(errs, validateCertificates(f)...)
	return errs
}

func validateRoles(f *Feed) []error {
	var errs []error
	seen := make(map[string]bool, len(f.Roles))
	for i, r := range f.Roles {
		prefix := fmt.Sprintf("roles[%d]", i)
		id := strings.TrimSpace(r.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, id))
		}
		seen[id] = true
		if strings.TrimSpace(r.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
	}
	return errs
}

func validateCertificates(f *Feed) []error {
	var errs []error
	seen := make(map[string]bool, len(f.Certificates))
	for i, c := range f.Certificates {
		prefix := fmt.Sprintf("certificates[%d]", i)
		title := strings.TrimSpace(c.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
			continue
		}
		if seen[title] {
			errs = append(errs, fmt.Errorf("%s.title: duplicate title %q", prefix, title))
		}
		seen[title] = true
	}
	return errs
}
