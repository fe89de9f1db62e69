package utils

import "testing"

type loginForm struct {
	EmployeeID string `validate:"required"`
	Password   string `validate:"required,min=6"`
	Role       string `validate:"required,oneof=employee hr manager admin"`
	Email      string `validate:"omitempty,email"`
}

func TestValidateStructPasses(t *testing.T) {
	details := ValidateStruct(loginForm{
		EmployeeID: "EMP001",
		Password:   "s3cret-password",
		Role:       "employee",
	})
	if details != nil {
		t.Errorf("expected nil, got %v", details)
	}
}

func TestValidateStructReportsFields(t *testing.T) {
	details := ValidateStruct(loginForm{
		Password: "abc",
		Role:     "root",
		Email:    "not-an-email",
	})
	if details == nil {
		t.Fatal("expected validation errors")
	}

	if details["employeeID"] != "is required" {
		t.Errorf("employeeID = %q", details["employeeID"])
	}
	if details["password"] != "must be at least 6 characters" {
		t.Errorf("password = %q", details["password"])
	}
	if details["role"] != "must be one of: employee hr manager admin" {
		t.Errorf("role = %q", details["role"])
	}
	if details["email"] != "must be a valid email" {
		t.Errorf("email = %q", details["email"])
	}
}
