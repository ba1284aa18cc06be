package pagination

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, "inv-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedAt)
	assert.Equal(t, "inv-42", decodedID)

	// IDs may themselves contain the separator
	decodedAt, decodedID, err = DecodeToken(EncodeToken(time.Time{}, "a|b"))
	assert.NoError(t, err)
	assert.True(t, decodedAt.IsZero())
	assert.Equal(t, "a|b", decodedID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(EncodeToken(time.Now(), "")) // empty id
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken("bm90LWEtZGF0ZXxpZA") // "not-a-date|id"
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

type item struct {
	id string
	at time.Time
}

func itemCursor(i item) (time.Time, string) { return i.at, i.id }

func TestPage(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]item, 5)
	for i := range items {
		items[i] = item{id: fmt.Sprintf("i%d", i), at: base.Add(time.Duration(i) * time.Minute)}
	}

	page, next, err := Page(items, 2, "", itemCursor)
	require.NoError(t, err)
	assert.Equal(t, items[0:2], page)
	require.NotEmpty(t, next)

	page, next, err = Page(items, 2, next, itemCursor)
	require.NoError(t, err)
	assert.Equal(t, items[2:4], page)

	page, next, err = Page(items, 2, next, itemCursor)
	require.NoError(t, err)
	assert.Equal(t, items[4:], page)
	assert.Empty(t, next, "last page has no next token")

	all, next, err := Page(items, 0, "", itemCursor)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Empty(t, next)

	_, _, err = Page(items, 2, EncodeToken(base, "unknown"), itemCursor)
	assert.Error(t, err)
}
