package entity_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/storefront-media/internal/domain/entity"
)

func TestRawImageInput_Payload(t *testing.T) {
	t.Run("returns owned bytes as-is", func(t *testing.T) {
		input := entity.BytesInput([]byte("raw image data"), "a.jpg", "image/jpeg")

		data, mime, err := input.Payload()

		require.NoError(t, err)
		assert.Equal(t, []byte("raw image data"), data)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("decodes a base64 data uri", func(t *testing.T) {
		raw := []byte("png-ish payload")
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

		data, mime, err := entity.DataURIInput(uri).Payload()

		require.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("fails on broken base64", func(t *testing.T) {
		_, _, err := entity.DataURIInput("data:image/png;base64,!!!").Payload()
		assert.Error(t, err)
	})

	t.Run("fails on a uri without a payload separator", func(t *testing.T) {
		_, _, err := entity.DataURIInput("data:image/png").Payload()
		assert.Error(t, err)
	})

	t.Run("fails on a non-base64 encoding", func(t *testing.T) {
		_, _, err := entity.DataURIInput("data:image/png;utf8,hello").Payload()
		assert.Error(t, err)
	})

	t.Run("remote urls carry no payload", func(t *testing.T) {
		_, _, err := entity.RemoteURLInput("https://cdn.example.com/a.jpg").Payload()
		assert.Error(t, err)
	})
}

func TestRawImageInput_DeclaredSize(t *testing.T) {
	assert.Equal(t, int64(5), entity.BytesInput([]byte("12345"), "a.jpg", "image/jpeg").DeclaredSize())

	// exact for every padding alignment, not just multiples of 3; a 2-byte
	// overestimate would reject an image sitting exactly on a size limit
	for _, n := range []int{15, 16, 17} {
		raw := bytes.Repeat([]byte{0xAB}, n)
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
		assert.Equal(t, int64(n), entity.DataURIInput(uri).DeclaredSize(), "payload of %d bytes", n)
	}

	assert.Equal(t, int64(0), entity.RemoteURLInput("https://cdn.example.com/a.jpg").DeclaredSize())
}

func TestRawImageInput_DeclaredMIME(t *testing.T) {
	assert.Equal(t, "image/jpeg", entity.BytesInput(nil, "a.jpg", "image/jpeg").DeclaredMIME())
	assert.Equal(t, "image/png", entity.DataURIInput("data:image/png;base64,AAAA").DeclaredMIME())
	assert.Equal(t, "", entity.DataURIInput("not a data uri").DeclaredMIME())
	assert.Equal(t, "", entity.RemoteURLInput("https://cdn.example.com/a.jpg").DeclaredMIME())
}
