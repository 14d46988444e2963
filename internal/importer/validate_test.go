package importer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema_Default(t *testing.T) {
	errs := ValidateSchema(DefaultSchema())
	assert.Empty(t, errs)
}

func TestValidateSchema_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ContractSchema)
		wantErr error
		wantMsg string
	}{
		{"missing developer name", func(s *ContractSchema) { s.Developer.Name = "" }, domain.ErrMissingField, "developer.name"},
		{"missing feedback days", func(s *ContractSchema) { s.Developer.FeedbackDays = nil }, domain.ErrMissingField, "developer.feedback_days"},
		{"negative feedback days", func(s *ContractSchema) { s.Developer.FeedbackDays = ptrInt(-1) }, domain.ErrInvalidValue, "developer.feedback_days"},
		{"missing payment window", func(s *ContractSchema) { s.Developer.PaymentDueDays = nil }, domain.ErrMissingField, "developer.payment_due_days"},
		{"missing payment method", func(s *ContractSchema) { s.Developer.PaymentMethod = " " }, domain.ErrMissingField, "developer.payment_method"},
		{"missing interest", func(s *ContractSchema) { s.Developer.Interest = nil }, domain.ErrMissingField, "developer.interest"},
		{"negative rate", func(s *ContractSchema) { s.Developer.Rate = ptrFloat(-20) }, domain.ErrInvalidValue, "developer.rate"},
		{"NaN rate", func(s *ContractSchema) { s.Developer.Rate = ptrFloat(math.NaN()) }, domain.ErrInvalidValue, "developer.rate"},
		{"NaN interest", func(s *ContractSchema) { s.Developer.Interest = ptrFloat(math.NaN()) }, domain.ErrInvalidValue, "developer.interest"},
		{"infinite interest", func(s *ContractSchema) { s.Developer.Interest = ptrFloat(math.Inf(1)) }, domain.ErrInvalidValue, "developer.interest"},
		{"bad rate kind", func(s *ContractSchema) { s.Developer.RateKind = "daily" }, domain.ErrInvalidValue, "developer.rate_kind"},
		{"missing client", func(s *ContractSchema) { s.Client = ClientSchema{} }, domain.ErrMissingField, "client.company"},
		{"missing type", func(s *ContractSchema) { s.Project.Type = "" }, domain.ErrMissingField, "project.type"},
		{"multi-word type", func(s *ContractSchema) { s.Project.Type = "web app" }, domain.ErrInvalidValue, "single word"},
		{"missing currency", func(s *ContractSchema) { s.Project.Currency = nil }, domain.ErrMissingField, "project.currency"},
		{"empty currency", func(s *ContractSchema) { s.Project.Currency = ptrStr("") }, domain.ErrInvalidValue, "project.currency"},
		{"missing cost", func(s *ContractSchema) { s.Project.Phases[2].Cost = nil }, domain.ErrMissingField, "project.phases[2].cost"},
		{"negative cost", func(s *ContractSchema) { s.Project.Phases[1].Cost = ptrFloat(-1) }, domain.ErrInvalidValue, "project.phases[1].cost"},
		{"NaN cost", func(s *ContractSchema) { s.Project.Phases[1].Cost = ptrFloat(math.NaN()) }, domain.ErrInvalidValue, "finite"},
		{"infinite cost", func(s *ContractSchema) { s.Project.Phases[2].Cost = ptrFloat(math.Inf(1)) }, domain.ErrInvalidValue, "project.phases[2].cost"},
		{"negative infinite cost", func(s *ContractSchema) { s.Project.Phases[2].Cost = ptrFloat(math.Inf(-1)) }, domain.ErrInvalidValue, "project.phases[2].cost"},
		{"missing phase index", func(s *ContractSchema) { s.Project.Phases[3].Phase = nil }, domain.ErrMissingField, "project.phases[3].phase"},
		{"duplicate phase", func(s *ContractSchema) { s.Project.Phases[3].Phase = ptrInt(1) }, domain.ErrInvalidValue, "duplicate phase 1"},
		{"no down payment", func(s *ContractSchema) { s.Project.Phases = s.Project.Phases[1:] }, domain.ErrMissingField, "phase=0"},
		{"down payment elements", func(s *ContractSchema) { s.Project.Phases[0].Elements = []string{"x"} }, domain.ErrInvalidValue, "project.phases[0].elements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchema()
			tt.mutate(s)
			errs := ValidateSchema(s)
			require.NotEmpty(t, errs)

			var found bool
			for _, err := range errs {
				if errors.Is(err, tt.wantErr) && strings.Contains(err.Error(), tt.wantMsg) {
					found = true
				}
			}
			assert.True(t, found, "expected %v mentioning %q, got %v", tt.wantErr, tt.wantMsg, errs)
		})
	}
}

func TestValidateSchema_CollectsAllErrors(t *testing.T) {
	s := DefaultSchema()
	s.Developer.Name = ""
	s.Project.Currency = nil
	s.Project.Phases[1].Cost = nil

	errs := ValidateSchema(s)
	assert.Len(t, errs, 3)
}
