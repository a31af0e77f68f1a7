package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodStringGuardsUnknownValues(t *testing.T) {
	assert.Equal(t, "Cash", PaymentMethodCash.String())
	assert.Equal(t, "Card", PaymentMethodCard.String())
	assert.Equal(t, "Transfer", PaymentMethodTransfer.String())
	assert.Equal(t, "Unknown", PaymentMethod(5).String())
	assert.Equal(t, "Unknown", PaymentMethod(-1).String())
}

func TestPaymentMethodUnmarshalJSON(t *testing.T) {
	var m PaymentMethod
	require.NoError(t, json.Unmarshal([]byte(`"Card"`), &m))
	assert.Equal(t, PaymentMethodCard, m)

	require.NoError(t, json.Unmarshal([]byte(`2`), &m))
	assert.Equal(t, PaymentMethodTransfer, m)

	assert.Error(t, json.Unmarshal([]byte(`5`), &m))
	assert.Error(t, json.Unmarshal([]byte(`"Bitcoin"`), &m))
}

func TestPaymentMethodMarshalJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(PaymentMethodTransfer)
	require.NoError(t, err)
	assert.Equal(t, `"Transfer"`, string(raw))

	var m PaymentMethod
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, PaymentMethodTransfer, m)
}
