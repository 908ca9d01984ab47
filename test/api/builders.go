package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// ClientPayloadBuilder builds client payloads, including ones the remote
// service must reject, which ClientRequest cannot express.
type ClientPayloadBuilder struct {
	payload map[string]interface{}
}

// NewClientPayload creates a valid payload, {"id": 1, "name": "test"}.
func NewClientPayload() *ClientPayloadBuilder {
	return &ClientPayloadBuilder{
		payload: map[string]interface{}{
			"id":   1,
			"name": "test",
		},
	}
}

// WithID sets the id to any JSON value, integer or not.
func (b *ClientPayloadBuilder) WithID(id interface{}) *ClientPayloadBuilder {
	b.payload["id"] = id

	return b
}

// WithoutID removes the id.
func (b *ClientPayloadBuilder) WithoutID() *ClientPayloadBuilder {
	delete(b.payload, "id")

	return b
}

// WithName sets the name.
func (b *ClientPayloadBuilder) WithName(name interface{}) *ClientPayloadBuilder {
	b.payload["name"] = name

	return b
}

// WithoutName removes the name.
func (b *ClientPayloadBuilder) WithoutName() *ClientPayloadBuilder {
	delete(b.payload, "name")

	return b
}

// WithField adds a field the remote service does not know about.
func (b *ClientPayloadBuilder) WithField(key string, value interface{}) *ClientPayloadBuilder {
	b.payload[key] = value

	return b
}

// Build returns the completed payload.
func (b *ClientPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}
