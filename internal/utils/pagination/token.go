package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded token from the creation time and ID of
// the last item on a page.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}
	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return createdAt, parts[1], nil
}

// Cursor identifies an item for Page.
type Cursor[T any] func(item T) (createdAt time.Time, id string)

// Page returns up to limit items following the item named by token, plus the
// token for the next page ("" on the last page). items must already be in
// listing order. A limit of zero or less returns everything after token.
func Page[T any](items []T, limit int, token string, cursor Cursor[T]) ([]T, string, error) {
	start := 0
	if token != "" {
		createdAt, id, err := DecodeToken(token)
		if err != nil {
			return nil, "", err
		}
		start = -1
		for i, item := range items {
			c, itemID := cursor(item)
			if itemID == id && c.Equal(createdAt) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", fmt.Errorf("pagination token does not match any item")
		}
	}

	rest := items[start:]
	if limit <= 0 || len(rest) <= limit {
		return rest, "", nil
	}
	page := rest[:limit]
	createdAt, id := cursor(page[len(page)-1])
	return page, EncodeToken(createdAt, id), nil
}
