package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	type slot struct {
		Room  string `json:"room"`
		State string `json:"state"`
	}

	raw, err := encode("plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), raw)

	var text string
	require.NoError(t, decode(raw, &text))
	assert.Equal(t, "plain", text)

	raw, err = encode(slot{Room: "lab-a", State: "available"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"room":"lab-a","state":"available"}`, string(raw))

	var got slot
	require.NoError(t, decode(raw, &got))
	assert.Equal(t, slot{Room: "lab-a", State: "available"}, got)

	_, err = encode(make(chan int))
	assert.Error(t, err)
	assert.Error(t, decode([]byte("{"), &got))
}
