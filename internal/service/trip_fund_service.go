package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
	"github.com/dafibh/tripfund/tripfund-backend/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxTimelineMonths is the default upper bound on timeline length (50 years)
	DefaultMaxTimelineMonths = 600
)

var maxMonthsNeeded = decimal.NewFromInt(math.MaxInt64)

// TripFundService computes savings projections for a trip.
// It holds no per-request state and is safe for concurrent use.
type TripFundService struct {
	maxTimelineMonths int64
}

// NewTripFundService creates a new TripFundService
func NewTripFundService(maxTimelineMonths int) *TripFundService {
	if maxTimelineMonths <= 0 {
		maxTimelineMonths = DefaultMaxTimelineMonths
	}
	return &TripFundService{
		maxTimelineMonths: int64(maxTimelineMonths),
	}
}

// MaxTimelineMonths returns the configured timeline length limit
func (s *TripFundService) MaxTimelineMonths() int64 {
	return s.maxTimelineMonths
}

// TripFundResult is the outcome of evaluating one set of calculator inputs.
// Projection and Chart are nil when the input is invalid.
type TripFundResult struct {
	Message    string
	Projection *domain.TripFundProjection
	Timeline   *domain.TripFundTimeline
	Chart      *domain.ChartData
	// ChartErr is set when a projection exists but its timeline could not be built
	ChartErr error
}

// Valid reports whether the inputs produced a projection
func (r *TripFundResult) Valid() bool {
	return r.Projection != nil
}

// Summary converts the result into its serialized form.
// now anchors the affordableFrom month.
func (r *TripFundResult) Summary(now time.Time) domain.TripFundSummary {
	summary := domain.TripFundSummary{
		Valid:   r.Valid(),
		Message: r.Message,
		Chart:   r.Chart,
	}
	if !r.Valid() {
		return summary
	}

	totalCost := r.Projection.TotalCost.StringFixed(2)
	months := r.Projection.MonthsNeeded
	summary.TotalCost = &totalCost
	summary.MonthsNeeded = &months
	summary.AlreadyAffordable = r.Projection.AlreadyAffordable

	if year, month, ok := util.MonthAfter(now.Year(), now.Month(), months); ok {
		affordableFrom := fmt.Sprintf("%04d-%02d", year, int(month))
		summary.AffordableFrom = &affordableFrom
	}
	if r.ChartErr != nil {
		summary.ChartUnavailable = r.ChartErr.Error()
	}

	return summary
}

// ParseInput validates raw calculator fields.
// Every field must be a finite number and the monthly deposit must be greater than zero.
func (s *TripFundService) ParseInput(input domain.TripFundInput) (domain.TripFundAmounts, error) {
	baseCost, err := parseAmount(domain.FieldBaseCost, input.BaseCost)
	if err != nil {
		return domain.TripFundAmounts{}, err
	}
	currentSavings, err := parseAmount(domain.FieldCurrentSavings, input.CurrentSavings)
	if err != nil {
		return domain.TripFundAmounts{}, err
	}
	monthlyDeposit, err := parseAmount(domain.FieldMonthlyDeposit, input.MonthlyDeposit)
	if err != nil {
		return domain.TripFundAmounts{}, err
	}
	if !monthlyDeposit.IsPositive() {
		return domain.TripFundAmounts{}, fmt.Errorf("%w: %s must be greater than 0", domain.ErrInvalidInput, domain.FieldMonthlyDeposit)
	}

	return domain.TripFundAmounts{
		BaseCost:       baseCost,
		CurrentSavings: currentSavings,
		MonthlyDeposit: monthlyDeposit,
	}, nil
}

// Calculate parses the raw input and projects it.
// This is the single calculation both the message and the timeline are derived from.
func (s *TripFundService) Calculate(input domain.TripFundInput) (*domain.TripFundProjection, error) {
	amounts, err := s.ParseInput(input)
	if err != nil {
		return nil, err
	}
	return s.Project(amounts)
}

// Project derives total cost and months needed from validated amounts
func (s *TripFundService) Project(amounts domain.TripFundAmounts) (*domain.TripFundProjection, error) {
	if !amounts.MonthlyDeposit.IsPositive() {
		return nil, fmt.Errorf("%w: %s must be greater than 0", domain.ErrInvalidInput, domain.FieldMonthlyDeposit)
	}

	totalCost := amounts.BaseCost.Mul(domain.SafetyMarginMultiplier)
	projection := &domain.TripFundProjection{
		Amounts:   amounts,
		TotalCost: totalCost,
	}

	if amounts.CurrentSavings.GreaterThanOrEqual(totalCost) {
		projection.AlreadyAffordable = true
		return projection, nil
	}

	months, err := monthsNeeded(totalCost.Sub(amounts.CurrentSavings), amounts.MonthlyDeposit)
	if err != nil {
		return nil, err
	}
	projection.MonthsNeeded = months

	return projection, nil
}

// ResultMessage returns the user-facing result for raw input. It never fails:
// invalid input yields the advisory message.
func (s *TripFundService) ResultMessage(input domain.TripFundInput) string {
	projection, err := s.Calculate(input)
	if err != nil {
		return domain.MessageInvalidInput
	}
	return FormatResultMessage(projection)
}

// Timeline returns the projected savings series for raw input, or false when
// no projection exists or the timeline is longer than the configured limit.
func (s *TripFundService) Timeline(input domain.TripFundInput) (*domain.TripFundTimeline, bool) {
	projection, err := s.Calculate(input)
	if err != nil {
		return nil, false
	}
	timeline, err := s.BuildTimeline(projection)
	if err != nil {
		return nil, false
	}
	return timeline, true
}

// Evaluate runs one calculation and derives every presentation of it
func (s *TripFundService) Evaluate(input domain.TripFundInput) *TripFundResult {
	projection, err := s.Calculate(input)
	if err != nil {
		log.Debug().Err(err).Msg("Trip fund input rejected")
		return &TripFundResult{Message: domain.MessageInvalidInput}
	}

	return s.resultFor(projection)
}

// resultFor derives the message and chart of a valid projection.
// A timeline that cannot be charted leaves the message intact and sets ChartErr.
func (s *TripFundService) resultFor(projection *domain.TripFundProjection) *TripFundResult {
	result := &TripFundResult{
		Message:    FormatResultMessage(projection),
		Projection: projection,
	}

	timeline, err := s.BuildTimeline(projection)
	if err != nil {
		result.ChartErr = err
		return result
	}
	result.Timeline = timeline
	result.Chart = BuildChart(timeline)

	return result
}

// BuildTimeline expands a projection into cumulative savings for months 0..MonthsNeeded.
// An already affordable projection yields the single point at month 0.
// Every value must be representable as a finite float64 chart point.
func (s *TripFundService) BuildTimeline(projection *domain.TripFundProjection) (*domain.TripFundTimeline, error) {
	if projection.MonthsNeeded > s.maxTimelineMonths {
		return nil, fmt.Errorf("%w: %d months (limit %d)", domain.ErrTimelineTooLong, projection.MonthsNeeded, s.maxTimelineMonths)
	}

	points := int(projection.MonthsNeeded) + 1
	timeline := &domain.TripFundTimeline{
		Labels: util.MonthLabels(points),
		Budget: make([]decimal.Decimal, points),
		Target: make([]decimal.Decimal, points),
	}

	savings := projection.Amounts.CurrentSavings
	deposit := projection.Amounts.MonthlyDeposit
	for i := 0; i < points; i++ {
		timeline.Budget[i] = savings.Add(deposit.Mul(decimal.NewFromInt(int64(i))))
		timeline.Target[i] = projection.TotalCost
		if !chartable(timeline.Budget[i]) || !chartable(timeline.Target[i]) {
			return nil, fmt.Errorf("%w: month %d", domain.ErrChartOutOfRange, i)
		}
	}

	return timeline, nil
}

// FormatResultMessage renders a projection as the user-facing result string
func FormatResultMessage(projection *domain.TripFundProjection) string {
	totalCost := projection.TotalCost.StringFixed(2)
	if projection.AlreadyAffordable {
		return fmt.Sprintf(domain.MessageAlreadyAffordable, totalCost)
	}
	return fmt.Sprintf(domain.MessageMonthsNeeded, projection.MonthsNeeded, totalCost)
}

// BuildChart shapes a timeline as line chart data: a budget series and a dashed target series
func BuildChart(timeline *domain.TripFundTimeline) *domain.ChartData {
	labels := make([]string, len(timeline.Labels))
	copy(labels, timeline.Labels)

	return &domain.ChartData{
		Title:  domain.ChartTitle,
		Labels: labels,
		Datasets: []domain.ChartDataset{
			{
				Label:       domain.BudgetDatasetLabel,
				Data:        toFloats(timeline.Budget),
				BorderColor: domain.BudgetDatasetColor,
				Tension:     domain.DatasetLineTension,
			},
			{
				Label:       domain.TargetDatasetLabel,
				Data:        toFloats(timeline.Target),
				BorderColor: domain.TargetDatasetColor,
				BorderDash:  []int{domain.TargetDatasetDashOn, domain.TargetDatasetDashOn},
				Tension:     domain.DatasetLineTension,
			},
		},
	}
}

// parseAmount parses one field. Length and exponent are bounded before any
// arithmetic so a short input cannot expand into a huge coefficient.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
	}
	if len(trimmed) > domain.MaxAmountLength {
		return decimal.Zero, fmt.Errorf("%w: %s is longer than %d characters", domain.ErrInvalidInput, field, domain.MaxAmountLength)
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, field)
	}
	if exp := value.Exponent(); exp > domain.MaxAmountExponent || exp < -domain.MaxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %s is out of range", domain.ErrInvalidInput, field)
	}
	return value, nil
}

// chartable reports whether v converts to a finite float64
func chartable(v decimal.Decimal) bool {
	return !math.IsInf(v.InexactFloat64(), 0)
}

// monthsNeeded returns ceil(shortfall / deposit) using exact integer division.
// Both arguments must be positive.
func monthsNeeded(shortfall, deposit decimal.Decimal) (int64, error) {
	quotient, remainder := shortfall.QuoRem(deposit, 0)
	if remainder.IsPositive() {
		quotient = quotient.Add(decimal.NewFromInt(1))
	}
	if quotient.GreaterThan(maxMonthsNeeded) {
		return 0, fmt.Errorf("%w: months needed is out of range", domain.ErrInvalidInput)
	}
	return quotient.IntPart(), nil
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}
