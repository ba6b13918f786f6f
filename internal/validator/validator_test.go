package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

type probe struct {
	Currency   string `binding:"omitempty,currency"`
	Mode       string `binding:"omitempty,query_mode"`
	AmountType string `binding:"omitempty,amount_type"`
}

func validate(t *testing.T, p probe) error {
	t.Helper()
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		t.Fatal("binding engine is not go-playground validator")
	}
	return v.Struct(p)
}

func TestRegister(t *testing.T) {
	Register()

	tests := []struct {
		name    string
		in      probe
		wantErr bool
	}{
		{name: "valid_currency", in: probe{Currency: "ARS"}},
		{name: "invalid_currency", in: probe{Currency: "XXX"}, wantErr: true},
		{name: "valid_mode", in: probe{Mode: "month"}},
		{name: "invalid_mode", in: probe{Mode: "week"}, wantErr: true},
		{name: "valid_amount_type", in: probe{AmountType: "total"}},
		{name: "invalid_amount_type", in: probe{AmountType: "unit"}, wantErr: true},
		{name: "empty_fields_pass", in: probe{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(t, tt.in)
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
