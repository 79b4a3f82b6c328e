package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
	"github.com/dafibh/tripfund/tripfund-backend/internal/service"
)

// Dispatch applies one raw client message to a calculator session and returns the reply event.
// Editing a field re-renders the chart; only an explicit calculate produces a result message.
func Dispatch(session *service.CalculatorSession, data []byte) Event {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return SessionError("malformed message")
	}

	switch msg.Type {
	case MessageTypeFieldSet:
		if err := session.SetField(msg.Field, string(msg.Value)); err != nil {
			return SessionError(err.Error())
		}
		return ChartUpdated(session.Chart())
	case MessageTypeCalculate:
		return ResultCalculated(session.Calculate())
	default:
		return SessionError(fmt.Errorf("%w: %q", domain.ErrUnsupportedEvent, msg.Type).Error())
	}
}
