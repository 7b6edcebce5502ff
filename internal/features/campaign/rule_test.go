package campaign

import (
	"testing"

	"edu-crm/internal/features/inquiry"
)

func TestEvaluateRule(t *testing.T) {
	inq := &inquiry.Inquiry{
		StudentName:  "Amira Hassan",
		GuardianName: "Omar Hassan",
		Phone:        "+201001234567",
		Email:        "omar@example.com",
		Stage:        inquiry.StageNew,
		Source:       inquiry.SourceFacebookAds,
	}

	tests := []struct {
		name    string
		rule    string
		want    bool
		wantErr bool
	}{
		{
			name: "empty rule matches everything",
			rule: "",
			want: true,
		},
		{
			name: "stage match",
			rule: `match := stage == "NEW"`,
			want: true,
		},
		{
			name: "stage mismatch",
			rule: `match := stage == "REGISTERED"`,
			want: false,
		},
		{
			name: "compound condition",
			rule: `match := stage == "NEW" && source == "FACEBOOK_ADS"`,
			want: true,
		},
		{
			name: "email presence flag",
			rule: `match := has_email`,
			want: true,
		},
		{
			name:    "rule without match assignment",
			rule:    `x := stage == "NEW"`,
			wantErr: true,
		},
		{
			name:    "syntax error",
			rule:    `match := stage ==`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateRule(tt.rule, inq)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got match=%v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EvaluateRule(%q) = %v, want %v", tt.rule, got, tt.want)
			}
		})
	}
}

func TestValidateRule(t *testing.T) {
	if err := ValidateRule(`match := source == "REFERRAL"`); err != nil {
		t.Errorf("valid rule rejected: %v", err)
	}
	if err := ValidateRule(`match := source ==`); err == nil {
		t.Error("expected error for malformed rule")
	}
}

func TestPersonalize(t *testing.T) {
	inq := &inquiry.Inquiry{
		StudentName: "Lina",
		Source:      inquiry.SourceReferral,
	}

	got := Personalize("Hi {{student_name}}, thanks for reaching out via {{source}}!", inq)
	want := "Hi Lina, thanks for reaching out via REFERRAL!"
	if got != want {
		t.Errorf("Personalize() = %q, want %q", got, want)
	}
}
