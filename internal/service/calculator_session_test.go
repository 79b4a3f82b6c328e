package service

import (
	"testing"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorSession_EmptySession(t *testing.T) {
	session := NewCalculatorSession(NewTripFundService(0))

	state := session.Snapshot()
	assert.Equal(t, domain.TripFundInput{}, state.Input)
	assert.Empty(t, state.Result)
	assert.Nil(t, session.Chart())
}

func TestCalculatorSession_SetFieldAndCalculate(t *testing.T) {
	session := NewCalculatorSession(NewTripFundService(0))

	require.NoError(t, session.SetField(domain.FieldBaseCost, "1000"))
	require.NoError(t, session.SetField(domain.FieldCurrentSavings, "500"))
	require.NoError(t, session.SetField(domain.FieldMonthlyDeposit, "200"))

	// Chart follows the fields before Calculate is triggered
	chart := session.Chart()
	require.NotNil(t, chart)
	assert.Len(t, chart.Labels, 6)
	assert.Empty(t, session.Snapshot().Result)

	message := session.Calculate()
	assert.Equal(t, "You need 5 month(s) to travel. (Total trip cost: $1500.00)", message)
	assert.Equal(t, message, session.Snapshot().Result)
}

func TestCalculatorSession_ResultIsStaleUntilRecalculated(t *testing.T) {
	session := NewCalculatorSession(NewTripFundService(0))

	require.NoError(t, session.SetField(domain.FieldBaseCost, "1000"))
	require.NoError(t, session.SetField(domain.FieldCurrentSavings, "1600"))
	require.NoError(t, session.SetField(domain.FieldMonthlyDeposit, "100"))
	first := session.Calculate()
	assert.Equal(t, "You can already travel! (Total trip cost: $1500.00)", first)

	require.NoError(t, session.SetField(domain.FieldMonthlyDeposit, "0"))
	assert.Nil(t, session.Chart())
	assert.Equal(t, first, session.Snapshot().Result)

	assert.Equal(t, domain.MessageInvalidInput, session.Calculate())
}

func TestCalculatorSession_UnknownField(t *testing.T) {
	session := NewCalculatorSession(NewTripFundService(0))

	err := session.SetField("destination", "Lisbon")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Equal(t, domain.TripFundInput{}, session.Snapshot().Input)
}
