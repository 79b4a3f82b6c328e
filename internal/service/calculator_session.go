package service

import (
	"fmt"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
)

// CalculatorSession holds the transient state of one interactive calculator:
// the three raw input fields and the last calculated result message.
// A session is owned by a single goroutine and is not safe for concurrent use.
type CalculatorSession struct {
	tripFundService *TripFundService
	input           domain.TripFundInput
	result          string
}

// NewCalculatorSession creates an empty CalculatorSession
func NewCalculatorSession(tripFundService *TripFundService) *CalculatorSession {
	return &CalculatorSession{
		tripFundService: tripFundService,
	}
}

// SetField updates one raw input field. The result message is left untouched
// until Calculate is called again.
func (s *CalculatorSession) SetField(field, value string) error {
	switch field {
	case domain.FieldBaseCost:
		s.input.BaseCost = value
	case domain.FieldCurrentSavings:
		s.input.CurrentSavings = value
	case domain.FieldMonthlyDeposit:
		s.input.MonthlyDeposit = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	return nil
}

// Calculate computes and stores the result message for the current fields
func (s *CalculatorSession) Calculate() string {
	s.result = s.tripFundService.ResultMessage(s.input)
	return s.result
}

// Chart recomputes chart data from the current fields.
// Returns nil when the fields do not form a valid projection.
func (s *CalculatorSession) Chart() *domain.ChartData {
	timeline, ok := s.tripFundService.Timeline(s.input)
	if !ok {
		return nil
	}
	return BuildChart(timeline)
}

// Snapshot returns a copy of the session state
func (s *CalculatorSession) Snapshot() domain.SessionState {
	return domain.SessionState{
		Input:  s.input,
		Result: s.result,
	}
}
