package inquiry

import "testing"

func TestValidStage(t *testing.T) {
	tests := []struct {
		stage string
		want  bool
	}{
		{StageNew, true},
		{StageContacted, true},
		{StageQualified, true},
		{StageReadyToRegister, true},
		{StageRegistered, true},
		{StageLost, true},
		{"new", false},
		{"ARCHIVED", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidStage(tt.stage); got != tt.want {
			t.Errorf("ValidStage(%q) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestConvertedStagesAreValid(t *testing.T) {
	for _, s := range ConvertedStages {
		if !ValidStage(s) {
			t.Errorf("converted stage %q is not a pipeline stage", s)
		}
	}
	if ValidStage(StageLost) && contains(ConvertedStages, StageLost) {
		t.Error("LOST must not count as converted")
	}
	if contains(ConvertedStages, StageNew) {
		t.Error("NEW must not count as converted")
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
