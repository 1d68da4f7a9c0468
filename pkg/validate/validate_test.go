package validate_test

import (
	"testing"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/validate"
)

type registerInput struct {
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	FirstName            string `json:"first_name"            validate:"required,max=50"`
	Phone                string `json:"phone"                 validate:"nullable,min=7"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Email:                "jane@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		FirstName:            "Jane",
		Phone:                "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("expected password to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Year int `json:"year" validate:"required,gte=1900,lte=2100"`
	}
	if errs := validate.Struct(in{Year: 1850}); !validate.HasErrors(errs) {
		t.Error("expected year < 1900 to fail")
	}
	if errs := validate.Struct(in{Year: 2024}); validate.HasErrors(errs) {
		t.Errorf("expected year 2024 to pass, got: %v", errs)
	}
}

func TestMinLength(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=8"`
	}
	if errs := validate.Struct(in{Password: "short"}); !validate.HasErrors(errs) {
		t.Error("expected short password to fail")
	}
	if errs := validate.Struct(in{Password: "longenough"}); validate.HasErrors(errs) {
		t.Errorf("expected 10-char password to pass: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Type string `json:"type" validate:"required,in=purchase,lease,rental"`
	}
	if errs := validate.Struct(in{Type: "borrow"}); !validate.HasErrors(errs) {
		t.Error("expected unknown booking type to fail")
	}
	if errs := validate.Struct(in{Type: "lease"}); validate.HasErrors(errs) {
		t.Errorf("expected lease to pass: %v", errs)
	}
}

// in= followed by another rule must not swallow the next rule's keyword.
func TestInRuleFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Duration string `json:"duration" validate:"required,in=1-day,3-days,1-week,max=20"`
	}
	if errs := validate.Struct(in{Duration: "3-days"}); validate.HasErrors(errs) {
		t.Errorf("expected 3-days to pass: %v", errs)
	}
	if errs := validate.Struct(in{Duration: "forever"}); !validate.HasErrors(errs) {
		t.Error("expected unknown duration to fail")
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password"              validate:"required,min=8"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "wrong"}); !validate.HasErrors(errs) {
		t.Error("expected confirmation mismatch to fail")
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"}); validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Phone string `json:"phone" validate:"nullable,min=7"`
	}
	// Empty string — nullable, remaining rules are skipped
	if errs := validate.Struct(in{Phone: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty but too short — should fail
	if errs := validate.Struct(in{Phone: "123"}); !validate.HasErrors(errs) {
		t.Error("expected short phone to fail")
	}
}

func TestDateRule(t *testing.T) {
	type in struct {
		Start string `json:"start_date" validate:"required,date"`
	}
	if errs := validate.Struct(in{Start: "2025-06-01"}); validate.HasErrors(errs) {
		t.Errorf("expected ISO date to pass: %v", errs)
	}
	if errs := validate.Struct(in{Start: "someday"}); !validate.HasErrors(errs) {
		t.Error("expected non-date to fail")
	}
}
