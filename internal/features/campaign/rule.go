package campaign

import (
	"fmt"

	"edu-crm/internal/features/inquiry"

	"github.com/d5/tengo/v2"
)

// EvaluateRule runs an audience rule script against one inquiry. The
// script sees the inquiry's fields as variables and must assign the
// boolean result to `match`, e.g.:
//
//	match := stage == "NEW" && source == "FACEBOOK_ADS"
//
// An empty rule matches everything.
func EvaluateRule(rule string, inq *inquiry.Inquiry) (bool, error) {
	if rule == "" {
		return true, nil
	}

	script := tengo.NewScript([]byte(rule))

	script.Add("stage", inq.Stage)
	script.Add("source", inq.Source)
	script.Add("student_name", inq.StudentName)
	script.Add("guardian_name", inq.GuardianName)
	script.Add("phone", inq.Phone)
	script.Add("email", inq.Email)
	script.Add("has_email", inq.Email != "")

	compiled, err := script.Compile()
	if err != nil {
		return false, fmt.Errorf("failed to compile audience rule: %w", err)
	}

	if err := compiled.Run(); err != nil {
		return false, fmt.Errorf("failed to run audience rule: %w", err)
	}

	match := compiled.Get("match")
	if match.IsUndefined() {
		return false, fmt.Errorf("audience rule did not assign `match`")
	}
	return match.Bool(), nil
}

// ValidateRule compiles a rule against a zero inquiry so bad scripts
// are rejected at save time instead of send time.
func ValidateRule(rule string) error {
	_, err := EvaluateRule(rule, &inquiry.Inquiry{})
	return err
}
