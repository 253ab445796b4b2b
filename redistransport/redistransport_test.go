package redistransport

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edirooss/valkeybatch/command"
	"github.com/edirooss/valkeybatch/config"
	"github.com/edirooss/valkeybatch/dispatch/transport"
)

func TestNewStandaloneConstructsNonNilClient(t *testing.T) {
	c := NewStandalone(config.DefaultStandaloneConfig("localhost:6379"), zap.NewNop())
	require.NotNil(t, c)
	require.NotNil(t, c.rdb)
	assert.NoError(t, c.Close())
}

func TestNewClusterConstructsNonNilClient(t *testing.T) {
	c := NewCluster(config.DefaultClusterConfig("localhost:7000", "localhost:7001"), zap.NewNop())
	require.NotNil(t, c)
	require.NotNil(t, c.rdb)
	assert.NoError(t, c.Close())
}

func TestNormalizeReplyPassesStringThroughWhenNotBinary(t *testing.T) {
	assert.Equal(t, "hello", normalizeReply("hello", false))
}

func TestNormalizeReplyDecodesStringAsBytesWhenBinaryOutput(t *testing.T) {
	assert.Equal(t, []byte("hello"), normalizeReply("hello", true))
}

func TestNormalizeReplyRecursesIntoArray(t *testing.T) {
	out := normalizeReply([]any{"a", "b"}, true)
	arr, ok := out.([]any)
	require.True(t, ok)
	assert.Equal(t, []byte("a"), arr[0])
	assert.Equal(t, []byte("b"), arr[1])
}

func TestNormalizeReplyFoldsAnyKeyedMapToStringKeys(t *testing.T) {
	out := normalizeReply(map[any]any{"f1": "v1"}, false)
	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v1", m["f1"])
}

func TestNormalizeReplyRecursesIntoStringKeyedMap(t *testing.T) {
	out := normalizeReply(map[string]any{"f1": "v1"}, true)
	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), m["f1"])
}

func TestNormalizeReplyPassesIntegerThrough(t *testing.T) {
	assert.Equal(t, int64(42), normalizeReply(int64(42), false))
}

// TestExecSurvivesPerCommandServerErrorInPipeline drives a real pipeline
// against an in-memory server where one queued command fails server-side
// (WRONGTYPE) while its neighbors succeed. Pipeliner.Exec reports the error
// of that first failed command, but every Cmder's own result is still
// populated independently — Exec must attribute the failure to its own
// Reply.Err rather than discarding the whole batch's results.
func TestExecSurvivesPerCommandServerErrorInPipeline(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.Set("existing-string", "hello")

	c := NewStandalone(config.StandaloneConfig{Addr: mr.Addr()}, zap.NewNop())
	defer c.Close()

	req := transport.Request{
		Commands: []command.Command{
			command.NewText("SET", "k1", "v1"),
			command.NewText("LPUSH", "existing-string", "x"), // WRONGTYPE: key holds a string
			command.NewText("GET", "k1"),
		},
	}

	replies, err := c.Exec(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, replies, 3)

	assert.NoError(t, replies[0].Err)
	assert.Equal(t, "OK", replies[0].Value)

	require.Error(t, replies[1].Err)
	assert.Nil(t, replies[1].Value)

	assert.NoError(t, replies[2].Err)
	assert.Equal(t, "v1", replies[2].Value)
}

// TestExecReturnsErrorOnGenuineConnectionFailure confirms a dial failure
// (not attributable to any individual command) still short-circuits with a
// top-level error and no replies, since there is nothing to attribute it to.
func TestExecReturnsErrorOnGenuineConnectionFailure(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	addr := mr.Addr()
	mr.Close()

	c := NewStandalone(config.StandaloneConfig{Addr: addr, DialTimeout: 0}, zap.NewNop())
	defer c.Close()

	req := transport.Request{
		Commands: []command.Command{command.NewText("SET", "k1", "v1")},
	}

	replies, err := c.Exec(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, replies)
}
