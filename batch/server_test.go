package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestConfigGetRequiresParameters(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ConfigGet()
	assert.Error(t, b.Err())
}

func TestConfigGetBuildsCommand(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ConfigGet("maxmemory")
	assert.Equal(t, []string{"GET", "maxmemory"}, b.Commands()[0].ArgumentStrings())
}

func TestFlushDBAsync(t *testing.T) {
	b := batch.NewStandaloneBatch(false).FlushDB(true)
	assert.Equal(t, []string{"ASYNC"}, b.Commands()[0].ArgumentStrings())
}

func TestSelectAndMoveAreStandaloneOnly(t *testing.T) {
	b := batch.NewStandaloneBatch(false).Select(1).Move("k", 2)
	assert.Equal(t, []string{"1"}, b.Commands()[0].ArgumentStrings())
	assert.Equal(t, []string{"k", "2"}, b.Commands()[1].ArgumentStrings())
}

func TestObjectEncoding(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ObjectEncoding("k")
	cmd := b.Commands()[0]
	assert.Equal(t, "OBJECT", cmd.Name())
	assert.Equal(t, []string{"ENCODING", "k"}, cmd.ArgumentStrings())
}
