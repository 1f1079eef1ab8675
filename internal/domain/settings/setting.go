package settings

import (
	"sort"
	"strings"

	"portfolio-admin/internal/domain/record"
)

// Setting is a key/value pair controlling the public site.
type Setting struct {
	record.Base
	Key         string    `gorm:"not null;uniqueIndex" json:"key" binding:"required"`
	Value       string    `gorm:"type:text" json:"value"`
	Description string    `json:"description,omitempty"`
	ValueType   ValueType `gorm:"type:varchar(16)" json:"value_type"`
}

func (Setting) TableName() string { return "site_settings" }

// Normalize fills a missing type from the key and validates the value.
func (s *Setting) Normalize() error {
	if s.ValueType == "" {
		s.ValueType = InferValueType(s.Key)
	}
	return s.ValueType.Check(s.Value)
}

// Group is a display bucket for settings.
type Group struct {
	Title    string
	Settings []Setting
}

var groupRules = []struct {
	title string
	terms []string
}{
	{"General Settings", []string{"hero", "site_title", "site_description"}},
	{"Contact Settings", []string{"contact"}},
	{"Download Settings", []string{"resume", "download"}},
	{"Theme Settings", []string{"theme", "color"}},
}

// GroupByKey buckets settings by key substring. A setting lands in the
// first matching group; the rest go to "Other Settings". Empty groups are
// dropped and each group is sorted by key.
func GroupByKey(all []Setting) []Group {
	groups := make([]Group, len(groupRules)+1)
	for i, r := range groupRules {
		groups[i].Title = r.title
	}
	groups[len(groupRules)].Title = "Other Settings"

	for _, s := range all {
		idx := len(groupRules)
		for i, r := range groupRules {
			if containsAny(s.Key, r.terms) {
				idx = i
				break
			}
		}
		groups[idx].Settings = append(groups[idx].Settings, s)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Settings) == 0 {
			continue
		}
		sort.Slice(g.Settings, func(i, j int) bool { return g.Settings[i].Key < g.Settings[j].Key })
		out = append(out, g)
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
