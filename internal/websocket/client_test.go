package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_HandleEnforcesMessageBudget(t *testing.T) {
	client := NewClient(nil, NewHub(), newTestSession())
	msg := []byte(`{"type":"field.set","field":"baseCost","value":"1000"}`)

	for i := 0; i < messageBurst; i++ {
		evt := client.handle(msg)
		require.Equal(t, "chart.updated", evt.Type, "message %d", i)
	}

	rejected := 0
	for i := 0; i < messageRate; i++ {
		evt := client.handle(msg)
		if evt.Type == "session.error" {
			rejected++
			assert.Equal(t, ErrorPayload{Detail: ErrMessageRateExceeded.Error()}, evt.Payload)
		}
	}
	assert.Positive(t, rejected)
}
