package report

import (
	"testing"

	"edu-crm/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildUserPerformance(t *testing.T) {
	alice := user.User{ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@edulead.local", Role: user.RoleCounselor}
	bob := user.User{ID: primitive.NewObjectID(), Name: "Bob", Email: "bob@edulead.local", Role: user.RoleAdmin}
	carol := user.User{ID: primitive.NewObjectID(), Name: "Carol", Email: "carol@edulead.local", Role: user.RoleCounselor}

	agg := ownerAggregates{
		Inquiries: map[string]int64{
			alice.ID.Hex(): 10,
			bob.ID.Hex():   25,
		},
		Converted: map[string]int64{
			alice.ID.Hex(): 5,
			bob.ID.Hex():   5,
		},
		Interactions: map[string]int64{
			bob.ID.Hex(): 40,
		},
		ThisMonth: map[string]int64{
			alice.ID.Hex(): 2,
		},
	}

	rows := buildUserPerformance([]user.User{alice, bob, carol}, agg)

	if len(rows) != 3 {
		t.Fatalf("expected one row per roster user, got %d", len(rows))
	}

	// Sorted descending by inquiry count
	if rows[0].Name != "Bob" || rows[1].Name != "Alice" || rows[2].Name != "Carol" {
		t.Errorf("unexpected order: %s, %s, %s", rows[0].Name, rows[1].Name, rows[2].Name)
	}

	if rows[0].ConversionRate != 20 {
		t.Errorf("Bob conversion rate = %d, want 20", rows[0].ConversionRate)
	}
	if rows[1].ConversionRate != 50 {
		t.Errorf("Alice conversion rate = %d, want 50", rows[1].ConversionRate)
	}

	// Carol appears in no aggregate: everything zero-filled
	carolRow := rows[2]
	if carolRow.Inquiries != 0 || carolRow.Converted != 0 || carolRow.Interactions != 0 || carolRow.NewThisMonth != 0 {
		t.Errorf("expected zero-filled row for Carol, got %+v", carolRow)
	}
	if carolRow.ConversionRate != 0 {
		t.Errorf("zero inquiries must yield rate 0, got %d", carolRow.ConversionRate)
	}
}

func TestBuildUserPerformanceStableTieBreak(t *testing.T) {
	first := user.User{ID: primitive.NewObjectID(), Name: "First", Role: user.RoleCounselor}
	second := user.User{ID: primitive.NewObjectID(), Name: "Second", Role: user.RoleCounselor}

	agg := ownerAggregates{
		Inquiries: map[string]int64{
			first.ID.Hex():  7,
			second.ID.Hex(): 7,
		},
	}

	rows := buildUserPerformance([]user.User{first, second}, agg)
	if rows[0].Name != "First" || rows[1].Name != "Second" {
		t.Errorf("equal counts must keep roster order, got %s then %s", rows[0].Name, rows[1].Name)
	}
}

func TestBuildUserPerformanceHumanizesRole(t *testing.T) {
	u := user.User{ID: primitive.NewObjectID(), Name: "Dee", Role: "SENIOR_COUNSELOR"}
	rows := buildUserPerformance([]user.User{u}, ownerAggregates{})
	if rows[0].Role != "SENIOR COUNSELOR" {
		t.Errorf("role = %q, want underscores replaced", rows[0].Role)
	}
}
