package leadsync

import (
	"testing"

	"edu-crm/internal/features/inquiry"
)

func TestNormalizeSource(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"FACEBOOK_ADS", inquiry.SourceFacebookAds},
		{"facebook", inquiry.SourceFacebookAds},
		{"fb", inquiry.SourceFacebookAds},
		{"ig", inquiry.SourceInstagram},
		{"adwords", inquiry.SourceGoogleAds},
		{"web", inquiry.SourceWebsite},
		{"referral", inquiry.SourceReferral},
		{"WALK_IN", inquiry.SourceWalkIn},
		{"billboard", inquiry.SourceOther},
		{"", inquiry.SourceOther},
	}

	for _, tt := range tests {
		if got := normalizeSource(tt.raw); got != tt.want {
			t.Errorf("normalizeSource(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
