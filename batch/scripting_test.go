package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestFCallEmitsNumkeysForLegacyNoArgForm(t *testing.T) {
	b := batch.NewStandaloneBatch(false).FCall("myfunc", nil, nil)
	assert.Equal(t, []string{"myfunc", "0"}, b.Commands()[0].ArgumentStrings())
}

func TestFCallWithKeysAndArgs(t *testing.T) {
	b := batch.NewStandaloneBatch(false).FCall("myfunc", []string{"k1", "k2"}, []string{"a1"})
	assert.Equal(t, []string{"myfunc", "2", "k1", "k2", "a1"}, b.Commands()[0].ArgumentStrings())
}

func TestFunctionRestoreCarriesPolicyAfterPayload(t *testing.T) {
	payload := []byte{0x00, 0xFF}
	b := batch.NewStandaloneBatch(false).FunctionRestore(payload, batch.FunctionRestoreReplace)
	cmd := b.Commands()[0]
	assert.True(t, cmd.IsBinary())
	args := cmd.Arguments()
	assert.Equal(t, "RESTORE", string(args[0]))
	assert.Equal(t, payload, args[1])
	assert.Equal(t, "REPLACE", string(args[2]))
}

func TestFunctionLoadWithReplace(t *testing.T) {
	b := batch.NewStandaloneBatch(false).FunctionLoad("#!lua...", true)
	assert.Equal(t, []string{"LOAD", "REPLACE", "#!lua..."}, b.Commands()[0].ArgumentStrings())
}
