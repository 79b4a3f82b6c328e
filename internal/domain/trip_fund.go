package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SafetyMarginMultiplier inflates the base trip cost by a fixed 50%
var SafetyMarginMultiplier = decimal.NewFromFloat(1.5)

// Input field names, shared by the HTTP, WebSocket and CLI adapters
const (
	FieldBaseCost       = "baseCost"
	FieldCurrentSavings = "currentSavings"
	FieldMonthlyDeposit = "monthlyDeposit"
)

// Amount bounds. A raw amount longer than MaxAmountLength or with a decimal
// exponent outside ±MaxAmountExponent is invalid input.
const (
	MaxAmountLength   = 64
	MaxAmountExponent = 32
)

// User-facing result messages
const (
	MessageInvalidInput      = "Please enter valid numeric values and ensure deposit is greater than 0."
	MessageAlreadyAffordable = "You can already travel! (Total trip cost: $%s)"
	MessageMonthsNeeded      = "You need %d month(s) to travel. (Total trip cost: $%s)"
)

// Chart presentation constants
const (
	ChartTitle          = "Budget Evolution Over Time"
	BudgetDatasetLabel  = "Budget Evolution ($)"
	TargetDatasetLabel  = "Target ($)"
	BudgetDatasetColor  = "rgb(75, 192, 192)"
	TargetDatasetColor  = "rgb(255, 99, 132)"
	DatasetLineTension  = 0.1
	TargetDatasetDashOn = 5
)

// TripFundInput holds the raw, unparsed calculator fields.
// Any of them may be empty or non-numeric.
type TripFundInput struct {
	BaseCost       string `json:"baseCost"`
	CurrentSavings string `json:"currentSavings"`
	MonthlyDeposit string `json:"monthlyDeposit"`
}

// RawAmount is a calculator field as sent by a client.
// It accepts a JSON string, a JSON number or null.
type RawAmount string

// UnmarshalJSON implements json.Unmarshaler
func (r *RawAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*r = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*r = RawAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number")
	}
	*r = RawAmount(n.String())
	return nil
}

// TripFundAmounts holds validated calculator inputs
type TripFundAmounts struct {
	BaseCost       decimal.Decimal
	CurrentSavings decimal.Decimal
	MonthlyDeposit decimal.Decimal
}

// TripFundProjection is the derived result of one calculation
type TripFundProjection struct {
	Amounts           TripFundAmounts
	TotalCost         decimal.Decimal
	MonthsNeeded      int64
	AlreadyAffordable bool
}

// TripFundTimeline holds the two parallel series of a projection.
// Budget and Target always have MonthsNeeded+1 entries.
type TripFundTimeline struct {
	Labels []string
	Budget []decimal.Decimal
	Target []decimal.Decimal
}

// Len returns the number of points in the timeline
func (t *TripFundTimeline) Len() int {
	return len(t.Budget)
}

// ChartDataset is one line series in chart-ready form
type ChartDataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	Fill        bool      `json:"fill"`
	BorderColor string    `json:"borderColor"`
	BorderDash  []int     `json:"borderDash,omitempty"`
	Tension     float64   `json:"tension"`
}

// ChartData is a timeline shaped for a category/line chart
type ChartData struct {
	Title    string         `json:"title"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// TripFundSummary is the serialized outcome of one calculation, shared by the
// HTTP API and the CLI. Projection fields are null when the input is invalid.
type TripFundSummary struct {
	Valid             bool       `json:"valid"`
	Message           string     `json:"message"`
	TotalCost         *string    `json:"totalCost"`
	MonthsNeeded      *int64     `json:"monthsNeeded"`
	AlreadyAffordable bool       `json:"alreadyAffordable"`
	AffordableFrom    *string    `json:"affordableFrom,omitempty"` // YYYY-MM
	Chart             *ChartData `json:"chart"`
	ChartUnavailable  string     `json:"chartUnavailable,omitempty"`
}

// SessionState is a snapshot of one interactive calculator session
type SessionState struct {
	Input  TripFundInput `json:"input"`
	Result string        `json:"result"`
}
