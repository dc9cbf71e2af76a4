package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	occurredAt := time.Date(2025, 6, 15, 14, 30, 45, 123456789, time.UTC).Format(time.RFC3339Nano)
	transactionID := "7f8a1c2e-0000-4000-8000-123456789abc"

	token := EncodeMultiFieldToken(occurredAt, transactionID)
	assert.NotEmpty(t, token)

	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, occurredAt, fields[0])
	assert.Equal(t, transactionID, fields[1])
}

func TestDecodeMultiFieldTokenError(t *testing.T) {
	_, err := DecodeMultiFieldToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestMultiFieldTokenSingleField(t *testing.T) {
	token := EncodeMultiFieldToken("only-one")
	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"only-one"}, fields)
}
