package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edirooss/valkeybatch/batch"
	"github.com/edirooss/valkeybatch/batcherrors"
)

func TestDumpConverterViaBatch(t *testing.T) {
	b := batch.NewStandaloneBatch(false).Dump("k")
	require.Len(t, b.Converters(), 1)

	conv := b.Converters()[0]
	assert.Equal(t, []byte(nil), conv(nil))
	assert.Equal(t, []byte("payload"), conv([]byte("payload")))
	assert.Equal(t, []byte("payload"), conv("payload"))

	_, isErr := conv(42).(*batcherrors.ResponseShapeError)
	assert.True(t, isErr)
}

func TestZMScoreConverterFoldsElementsThroughNullableFloat(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZMScore("k", "m1", "m2")
	conv := b.Converters()[0]

	out := conv([]any{"1.5", nil, "3"})
	arr, ok := out.([]any)
	require.True(t, ok)
	assert.Equal(t, 1.5, arr[0])
	assert.Nil(t, arr[1])
	assert.Equal(t, float64(3), arr[2])

	assert.Equal(t, []any(nil), conv(nil))
}

func TestHGetAllConverterFoldsRESP2FlatArray(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HGetAll("k")
	conv := b.Converters()[0]

	out := conv([]any{"f1", "v1", "f2", "v2"})
	m, ok := out.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"f1": "v1", "f2": "v2"}, m)
}

func TestHGetAllConverterAcceptsRESP3Map(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HGetAll("k")
	conv := b.Converters()[0]

	out := conv(map[string]any{"f1": "v1"})
	m, ok := out.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"f1": "v1"}, m)
}

func TestHGetAllConverterRejectsOddLengthArray(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HGetAll("k")
	conv := b.Converters()[0]

	_, isErr := conv([]any{"f1"}).(*batcherrors.ResponseShapeError)
	assert.True(t, isErr)
}

func TestHGetAllConverterOnNilReturnsEmptyMap(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HGetAll("k")
	conv := b.Converters()[0]

	out := conv(nil)
	assert.Equal(t, map[string]string{}, out)
}

func TestCustomCommandConverterPassesThroughUnchanged(t *testing.T) {
	b := batch.NewStandaloneBatch(false).CustomCommand("PING")
	conv := b.Converters()[0]
	assert.Equal(t, "PONG", conv("PONG"))
	assert.Equal(t, 7, conv(7))
}
