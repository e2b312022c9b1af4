package kafka_test

import (
	"reservas/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "reservation:1", Value: map[string]any{"type": "reservation.created", "id": 1}}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("reservation:1"), out.Key)
	assert.JSONEq(t, `{"type":"reservation.created","id":1}`, string(out.Value))

	bad := kafka.Message{Key: "x", Value: make(chan int)}
	_, err = bad.ToKafkaMessage()
	assert.Error(t, err)
}
