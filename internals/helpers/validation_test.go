// file: internals/helpers/validation_test.go
package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BrandName", "brand_name"},
		{"GroupID", "group_id"},
		{"SessionTableLayoutID", "session_table_layout_id"},
		{"Email", "email"},
		{"UserName", "user_name"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapValidationErrors(t *testing.T) {
	type payload struct {
		BrandName string `validate:"required,min=2"`
		Email     string `validate:"omitempty,email"`
	}

	v := validator.New()
	err := v.Struct(payload{BrandName: "", Email: "bukan-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := MapValidationErrors(err)
	if len(got["brand_name"]) == 0 {
		t.Errorf("expected error entry for brand_name, got %v", got)
	}
	if len(got["email"]) == 0 {
		t.Errorf("expected error entry for email, got %v", got)
	}
}
