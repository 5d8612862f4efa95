package common

import (
	"errors"
	"path"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases input and collapses anything outside [a-z0-9] into single hyphens.
// The fallback is slugified and used when input produces nothing.
func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// SafeFilename keeps the extension of name and slugifies the base so the result
// can be embedded in an object key or a Content-Disposition header.
func SafeFilename(name string) string {
	base, ext := name, ""
	if e := path.Ext(name); isSlugExt(strings.ToLower(e)) {
		base, ext = strings.TrimSuffix(name, e), strings.ToLower(e)
	}
	slug, err := Slugify(base, "file")
	if err != nil {
		slug = "file"
	}
	return slug + ext
}

func isSlugExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	return slugify(ext[1:]) == ext[1:]
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}
