package model

import "strings"

// Location represents a single tourism spot from the catalog
type Location struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Zone        string   `json:"zone"`
}

// HasTag reports whether the location carries the given tag, ignoring case
func (l Location) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
