package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edirooss/valkeybatch/batch"
)

func TestCustomCommandPassesArgsVerbatim(t *testing.T) {
	b := batch.NewStandaloneBatch(false).CustomCommand("DEBUG", "SLEEP", "0")
	require.NoError(t, b.Err())
	cmd := b.Commands()[0]
	assert.Equal(t, "DEBUG", cmd.Name())
	assert.Equal(t, []string{"SLEEP", "0"}, cmd.ArgumentStrings())
}

func TestCustomCommandRequiresAtLeastOneArg(t *testing.T) {
	b := batch.NewStandaloneBatch(false).CustomCommand()
	assert.Error(t, b.Err())
}
