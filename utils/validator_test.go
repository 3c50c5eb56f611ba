package utils

import (
	"strings"
	"testing"
)

type registerFields struct {
	Email           string `validate:"required,emailok"`
	Password        string `validate:"required,pwdstrong"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	FirstName       string `validate:"required,alphaname"`
	LastName        string `validate:"required,alphaname"`
	PhoneNumber     string `validate:"phoneintl"`
}

func validFields() registerFields {
	return registerFields{
		Email:           "jane@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		FirstName:       "Jane",
		LastName:        "Doe",
	}
}

func TestValidateStruct_AllValid(t *testing.T) {
	f := validFields()
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStruct_InvalidEmail(t *testing.T) {
	f := validFields()
	f.Email = "not-an-email"
	err := ValidateStruct(&f)
	if err == nil || !strings.Contains(err.Error(), "valid email") {
		t.Fatalf("expected invalid email message, got %v", err)
	}
}

func TestValidateStruct_EmailPaddingTolerated(t *testing.T) {
	// handlers normalize after validation, so padded input must not fail
	f := validFields()
	f.Email = " jane@x.co "
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected padded email to pass, got %v", err)
	}
}

func TestValidateStruct_PasswordComplexity(t *testing.T) {
	// 8 chars with upper, lower and digit passes
	f := validFields()
	f.Password = "Passw0rd"
	f.ConfirmPassword = "Passw0rd"
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected Passw0rd to pass, got %v", err)
	}

	// no uppercase or digit fails with the complexity message
	f.Password = "password"
	f.ConfirmPassword = "password"
	err := ValidateStruct(&f)
	if err == nil || !strings.Contains(err.Error(), "uppercase") {
		t.Fatalf("expected complexity message, got %v", err)
	}

	// too short fails even with all classes present
	f.Password = "Pass1wo"
	f.ConfirmPassword = "Pass1wo"
	if err := ValidateStruct(&f); err == nil {
		t.Fatalf("expected short password to fail")
	}
}

func TestValidateStruct_ConfirmMustEqualPassword(t *testing.T) {
	f := validFields()
	f.ConfirmPassword = "Different1"
	err := ValidateStruct(&f)
	if err == nil || !strings.Contains(err.Error(), "must equal Password") {
		t.Fatalf("expected eqfield message, got %v", err)
	}
}

func TestValidateStruct_NameLettersAndSpacesOnly(t *testing.T) {
	f := validFields()
	f.FirstName = "Jean-Paul"
	err := ValidateStruct(&f)
	if err == nil || !strings.Contains(err.Error(), "letters and spaces") {
		t.Fatalf("expected letters-and-spaces message, got %v", err)
	}

	f = validFields()
	f.FirstName = "Mary Jane"
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected name with space to pass, got %v", err)
	}
}

func TestValidateStruct_PhoneOptional(t *testing.T) {
	f := validFields()
	f.PhoneNumber = ""
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected empty optional phone to pass, got %v", err)
	}

	f.PhoneNumber = "+1 (555) 123-4567"
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected international phone to pass, got %v", err)
	}

	f.PhoneNumber = "call-me"
	err := ValidateStruct(&f)
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Fatalf("expected phone message, got %v", err)
	}
}

func TestValidateStruct_FirstFailingRuleWins(t *testing.T) {
	f := validFields()
	f.Email = ""
	f.Password = "bad"
	err := ValidateStruct(&f)
	if err == nil || !strings.Contains(err.Error(), "Email is required") {
		t.Fatalf("expected the first field's message, got %v", err)
	}
}
