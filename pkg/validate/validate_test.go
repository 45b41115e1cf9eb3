package validate_test

import (
	"testing"

	"github.com/priyankmodi/storefront/pkg/validate"
)

type signupInput struct {
	Name     string `json:"name"     validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type productInput struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"nullable,min=3"`
	Price       *float64 `json:"price"       validate:"required,numeric,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,integer,gte=0"`
	Status      string   `json:"status"      validate:"nullable,in=pending,processing,shipped,delivered,cancelled"`
	Active      string   `json:"active"      validate:"nullable,boolean"`
}

func ptrF(f float64) *float64 { return &f }
func ptrI(n int) *int         { return &n }

func TestValidInput(t *testing.T) {
	errs := validate.Struct(signupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(signupInput{Name: "Asha", Email: "not-an-email", Password: "hunter22"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email error")
	}
}

func TestMinOnStrings(t *testing.T) {
	errs := validate.Struct(signupInput{Name: "Al", Email: "al@example.com", Password: "hunter22"})
	if _, ok := errs["name"]; !ok {
		t.Error("expected name min-length error")
	}
}

func TestRequiredPointerToZeroPasses(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:  "Kettle",
		Price: ptrF(0),
		Stock: ptrI(0),
	})
	if validate.HasErrors(errs) {
		t.Errorf("zero price/stock should be valid, got: %v", errs)
	}
}

func TestRequiredNilPointerFails(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Kettle"})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be required")
	}
	if _, ok := errs["stock"]; !ok {
		t.Error("expected stock to be required")
	}
}

func TestGteOnNegativeNumbers(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:  "Kettle",
		Price: ptrF(-1),
		Stock: ptrI(-3),
	})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price gte error")
	}
	if _, ok := errs["stock"]; !ok {
		t.Error("expected stock gte error")
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Kettle", Price: ptrF(1), Stock: ptrI(1)})
	if validate.HasErrors(errs) {
		t.Errorf("empty nullable fields should pass, got: %v", errs)
	}

	errs = validate.Struct(productInput{
		Name: "Kettle", Price: ptrF(1), Stock: ptrI(1),
		Description: "ab",
	})
	if _, ok := errs["description"]; !ok {
		t.Error("expected description min error when value is present")
	}
}

func TestInWithMultipleValues(t *testing.T) {
	for _, status := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		errs := validate.Struct(productInput{
			Name: "Kettle", Price: ptrF(1), Stock: ptrI(1), Status: status,
		})
		if _, ok := errs["status"]; ok {
			t.Errorf("status %q should be allowed: %v", status, errs)
		}
	}

	errs := validate.Struct(productInput{
		Name: "Kettle", Price: ptrF(1), Stock: ptrI(1), Status: "returned",
	})
	if _, ok := errs["status"]; !ok {
		t.Error("expected status in-list error")
	}
}

func TestBooleanRule(t *testing.T) {
	for _, ok := range []string{"true", "false", "1", "0"} {
		errs := validate.Struct(productInput{
			Name: "Kettle", Price: ptrF(1), Stock: ptrI(1), Active: ok,
		})
		if _, bad := errs["active"]; bad {
			t.Errorf("active %q should be allowed: %v", ok, errs)
		}
	}

	errs := validate.Struct(productInput{
		Name: "Kettle", Price: ptrF(1), Stock: ptrI(1), Active: "yes",
	})
	if _, ok := errs["active"]; !ok {
		t.Error("expected boolean error for 'yes'")
	}
}

func TestIntegerRejectsFraction(t *testing.T) {
	type in struct {
		Qty float64 `json:"qty" validate:"required,integer"`
	}
	if errs := validate.Struct(in{Qty: 2}); validate.HasErrors(errs) {
		t.Errorf("whole float should pass integer rule: %v", errs)
	}
	if errs := validate.Struct(in{Qty: 2.5}); !validate.HasErrors(errs) {
		t.Error("fractional value should fail integer rule")
	}
}
