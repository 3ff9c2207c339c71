package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderEvent_Envelope(t *testing.T) {
	payload, err := json.Marshal(map[string]string{"reason": "db down"})
	require.NoError(t, err)

	before := time.Now().UTC()
	event := newOrderEvent(EventTypeCheckoutFailed, "INV-abc", "cust_1", payload)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventTypeCheckoutFailed, event.Type)
	assert.Equal(t, "INV-abc", event.Invoice)
	assert.Equal(t, "cust_1", event.CustomerID)
	assert.False(t, event.Timestamp.Before(before))

	// The wire format is consumed by downstream services; keep field names
	// stable.
	wire, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(wire, &decoded))
	for _, key := range []string{"id", "type", "invoice", "customer_id", "data", "timestamp"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "order.checkout_failed", decoded["type"])
}
