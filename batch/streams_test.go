package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edirooss/valkeybatch/batch"
)

func TestXAddBasic(t *testing.T) {
	b := batch.NewStandaloneBatch(false).XAdd("s", "*", map[string]string{"f": "v"}, nil)
	require.NoError(t, b.Err())
	cmd := b.Commands()[0]
	assert.Equal(t, "XADD", cmd.Name())
	assert.Equal(t, []string{"s", "*", "f", "v"}, cmd.ArgumentStrings())
}

func TestXAddWithTrimOptions(t *testing.T) {
	b := batch.NewStandaloneBatch(false).XAdd("s", "*", map[string]string{"f": "v"}, &batch.XAddOptions{
		TrimStrategy: "MAXLEN", TrimApprox: true, TrimThreshold: "1000",
	})
	cmd := b.Commands()[0]
	assert.Equal(t, []string{"s", "MAXLEN", "~", "1000", "*", "f", "v"}, cmd.ArgumentStrings())
}

func TestXReadGroupEmitsStreamsOnceWithKeysBeforeIDs(t *testing.T) {
	b := batch.NewStandaloneBatch(false).XReadGroup("g", "c", []string{"s1", "s2"}, []string{">", ">"}, &batch.XReadGroupOptions{NoAck: true})
	require.NoError(t, b.Err())
	cmd := b.Commands()[0]
	assert.Equal(t, []string{"GROUP", "g", "c", "NOACK", "STREAMS", "s1", "s2", ">", ">"}, cmd.ArgumentStrings())
}

func TestXReadGroupRejectsMismatchedKeysAndIDs(t *testing.T) {
	b := batch.NewStandaloneBatch(false).XReadGroup("g", "c", []string{"s1"}, []string{">", ">"}, nil)
	require.Error(t, b.Err())
}

func TestXClaimJustID(t *testing.T) {
	b := batch.NewStandaloneBatch(false).XClaimJustID("s", "g", "c", 100, []string{"1-1"}, &batch.XClaimOptions{Force: true})
	cmd := b.Commands()[0]
	assert.Equal(t, []string{"s", "g", "c", "100", "1-1", "FORCE", "JUSTID"}, cmd.ArgumentStrings())
}

func TestXPendingExtended(t *testing.T) {
	var idle int64 = 5000
	b := batch.NewStandaloneBatch(false).XPendingExtended("s", "g", &idle, "-", "+", 10, "c")
	cmd := b.Commands()[0]
	assert.Equal(t, []string{"s", "g", "IDLE", "5000", "-", "+", "10", "c"}, cmd.ArgumentStrings())
}
