package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeKeyToken creates a base64 encoded keyset token from a sort key and row id.
// The id goes first so that keys containing the separator still decode.
func EncodeKeyToken(key string, id int64) string {
	tokenStr := fmt.Sprintf("%d|%s", id, key)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeKeyToken parses a token produced by EncodeKeyToken.
func DecodeKeyToken(token string) (string, int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid pagination token format (split)")
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}
	return parts[1], id, nil
}

// NextPageToken returns a token for the row after last when the page came back full.
func NextPageToken(fetched, limit int, key string, id int64) *string {
	if limit <= 0 || fetched < limit {
		return nil
	}
	token := EncodeKeyToken(key, id)
	return &token
}
