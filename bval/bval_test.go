package bval_test

import (
	"testing"

	"github.com/edirooss/valkeybatch/bval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	v := bval.FromText("hello")
	assert.True(t, v.IsTextConvertible())
	s, ok := v.AsText()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
	assert.Equal(t, []byte("hello"), v.AsBytes())
}

func TestFromBytesTextConvertible(t *testing.T) {
	v := bval.FromBytes([]byte("plain text"))
	assert.True(t, v.IsTextConvertible())
	s, ok := v.AsText()
	require.True(t, ok)
	assert.Equal(t, "plain text", s)
}

func TestFromBytesNotTextConvertible(t *testing.T) {
	payload := []byte{0x00, 0xFF, 0x01, 0xFE}
	v := bval.FromBytes(payload)
	assert.False(t, v.IsTextConvertible())

	_, ok := v.AsText()
	assert.False(t, ok)

	_, err := v.ErrAsText("Set")
	require.Error(t, err)

	assert.Equal(t, payload, v.AsBytes())
}

func TestFromBytesCopiesInput(t *testing.T) {
	b := []byte("mutate me")
	v := bval.FromBytes(b)
	b[0] = 'X'
	assert.Equal(t, "mutate me", string(v.AsBytes()))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5, bval.FromText("hello").Len())
	assert.Equal(t, 4, bval.FromBytes([]byte{1, 2, 3, 4}).Len())
}
