package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
	safeExt   = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)
)

// MakeSlug turns a file's base name into a URL-safe slug.
// Example: "My CV (final).pdf" -> "my-cv-final"
func MakeSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "_", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "file"
	}
	return base
}

// ObjectName builds a collision-free stored name keeping the extension.
func ObjectName(filename string) string {
	filename = filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if !safeExt.MatchString(ext) {
		ext = ""
	}
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return MakeSlug(stem) + "-" + uuid.NewString()[:8] + ext
}
