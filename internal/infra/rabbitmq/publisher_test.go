package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg := NewMessage("order.created", map[string]any{"orderId": 1})

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "order.created", decoded["pattern"])
	assert.Equal(t, map[string]any{"orderId": float64(1)}, decoded["data"])

	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, msg.ID, NewMessage("order.created", nil).ID)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), "product.created", nil))
}
