// Package normalize maps raw store documents onto canonical records.
//
// Every function here is total: a document missing some or all fields still
// yields a fully populated record built from the documented defaults.
package normalize

import (
	"fmt"
	"strings"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
)

// Project builds the grid card for a projects document.
func Project(raw domain.RawRecord) domain.Project {
	return domain.Project{
		ID:          raw.ID,
		Title:       firstString(raw.Fields, projectTitleKeys, DefaultProjectTitle),
		Description: firstString(raw.Fields, projectDescriptionKeys, DefaultProjectDescription),
		Link:        firstString(raw.Fields, projectLinkKeys, DefaultLink),
		TechStack:   firstList(raw.Fields, projectTechStackKeys),
	}
}

// Certificate builds the tile for a certificates document.
func Certificate(raw domain.RawRecord) domain.Certificate {
	return domain.Certificate{
		ID:       raw.ID,
		Title:    firstString(raw.Fields, certificateTitleKeys, DefaultCertificateTitle),
		ImageRef: firstString(raw.Fields, certificateImageKeys, DefaultCertificateImage),
	}
}

// ProjectDetail builds the detail record. Tech stack and responsibilities are
// the union of every known key variant.
func ProjectDetail(raw domain.RawRecord) domain.ProjectDetail {
	return domain.ProjectDetail{
		ID:               raw.ID,
		Title:            firstString(raw.Fields, detailTitleKeys, DefaultDetailTitle),
		Description:      firstString(raw.Fields, detailDescriptionKeys, DefaultDetailDescription),
		GithubLink:       firstString(raw.Fields, detailGithubKeys, DefaultLink),
		TechStack:        unionList(raw.Fields, detailTechStackKeys),
		Responsibilities: unionList(raw.Fields, detailResponsibilitiesKeys),
	}
}

// Projects normalizes a whole collection, keeping store order.
func Projects(raws []domain.RawRecord) []domain.Project {
	out := make([]domain.Project, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Project(raw))
	}
	return out
}

// Certificates normalizes a whole collection, keeping store order.
func Certificates(raws []domain.RawRecord) []domain.Certificate {
	out := make([]domain.Certificate, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Certificate(raw))
	}
	return out
}

// firstString returns the first key whose value is a non-empty string.
func firstString(fields map[string]interface{}, keys []string, fallback string) string {
	for _, key := range keys {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// firstList returns the first key that yields a non-empty list.
func firstList(fields map[string]interface{}, keys []string) []string {
	for _, key := range keys {
		if list := stringList(fields[key]); len(list) > 0 {
			return list
		}
	}
	return []string{}
}

func unionList(fields map[string]interface{}, keys []string) []string {
	out := []string{}
	for _, key := range keys {
		out = append(out, stringList(fields[key])...)
	}
	return out
}

// stringList coerces a raw value into trimmed, non-empty strings. A bare
// string becomes a one-element list; nil elements are dropped and other
// scalars are formatted.
func stringList(v interface{}) []string {
	var items []interface{}
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		items = []interface{}{t}
	case []string:
		items = make([]interface{}, len(t))
		for i, s := range t {
			items[i] = s
		}
	case []interface{}:
		items = t
	default:
		items = []interface{}{t}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		switch it := item.(type) {
		case nil:
			continue
		case string:
			s = it
		case map[string]interface{}, []interface{}:
			continue
		default:
			s = fmt.Sprint(it)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
