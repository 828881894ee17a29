package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeKeyToken(t *testing.T) {
	tests := []struct {
		name string
		key  string
		id   int64
	}{
		{"plain name", "Ravi Traders", 42},
		{"name with separator", "A|B|C", 7},
		{"empty key", "", 1},
		{"unicode", "श्री गणेश स्टोर", 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := EncodeKeyToken(tt.key, tt.id)
			assert.NotEmpty(t, token, "Token should not be empty")

			key, id, err := DecodeKeyToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestDecodeKeyTokenError(t *testing.T) {
	_, _, err := DecodeKeyToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("12"))
	_, _, err = DecodeKeyToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badID := base64.URLEncoding.EncodeToString([]byte("abc|Ravi"))
	_, _, err = DecodeKeyToken(badID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestNextPageToken(t *testing.T) {
	assert.Nil(t, NextPageToken(3, 20, "Zed", 3), "short page has no next token")
	assert.Nil(t, NextPageToken(0, 0, "", 0))

	token := NextPageToken(20, 20, "Zed", 99)
	require.NotNil(t, token)
	key, id, err := DecodeKeyToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "Zed", key)
	assert.Equal(t, int64(99), id)
}
