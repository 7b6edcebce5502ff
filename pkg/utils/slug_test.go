package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"English for Kids", "english-for-kids"},
		{"  IELTS Prep  ", "ielts-prep"},
		{"A1/A2 General", "a1-a2-general"},
		{"already-slugged", "already-slugged"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FACEBOOK_ADS", "FACEBOOK ADS"},
		{"READY_TO_REGISTER", "READY TO REGISTER"},
		{"WEBSITE", "WEBSITE"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Humanize(tt.in); got != tt.want {
			t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
