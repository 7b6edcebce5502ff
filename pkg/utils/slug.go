package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Humanize turns an enum label like FACEBOOK_ADS into "FACEBOOK ADS"
func Humanize(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
