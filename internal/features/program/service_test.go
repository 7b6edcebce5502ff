package program

import "testing"

func TestSortLevels(t *testing.T) {
	levels := []Level{
		{Name: "Advanced", Code: "ADV", Order: 3},
		{Name: "Beginner", Code: "BEG", Order: 1},
		{Name: "Intermediate", Code: "INT", Order: 2},
	}

	sortLevels(levels)

	want := []string{"BEG", "INT", "ADV"}
	for i, code := range want {
		if levels[i].Code != code {
			t.Errorf("level %d = %q, want %q", i, levels[i].Code, code)
		}
	}
}

func TestSortLevelsStableForEqualOrder(t *testing.T) {
	levels := []Level{
		{Name: "A", Code: "A", Order: 1},
		{Name: "B", Code: "B", Order: 1},
	}

	sortLevels(levels)

	if levels[0].Code != "A" || levels[1].Code != "B" {
		t.Errorf("equal order must keep input order, got %q then %q", levels[0].Code, levels[1].Code)
	}
}
