package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestHSetRejectsEmptyFieldValues(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HSet("k", map[string]string{})
	assert.Error(t, b.Err())
}

func TestHDelRejectsEmptyFields(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HDel("k")
	assert.Error(t, b.Err())
}

// TestHSetEmitsFieldsInAscendingOrder locks in a deterministic wire vector
// for multi-field input, since map iteration order is otherwise randomized
// per run.
func TestHSetEmitsFieldsInAscendingOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		b := batch.NewStandaloneBatch(false).HSet("k", map[string]string{"zf": "zv", "af": "av", "mf": "mv"})
		assert.Equal(t, []string{"k", "af", "av", "mf", "mv", "zf", "zv"}, b.Commands()[0].ArgumentStrings())
	}
}

func TestHGetAll(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HGetAll("k")
	cmd := b.Commands()[0]
	assert.Equal(t, "HGETALL", cmd.Name())
	assert.Equal(t, []string{"k"}, cmd.ArgumentStrings())
}

func TestHScanWithNoValues(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HScan("k", 0, &batch.HScanOptions{Match: "f*", NoValues: true})
	assert.Equal(t, []string{"k", "0", "MATCH", "f*", "NOVALUES"}, b.Commands()[0].ArgumentStrings())
}

func TestHTTLEmitsFieldsTokenWithCount(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HTTL("k", "f1", "f2")
	assert.Equal(t, []string{"k", "FIELDS", "2", "f1", "f2"}, b.Commands()[0].ArgumentStrings())
}

func TestHTTLRejectsEmptyFields(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HTTL("k")
	assert.Error(t, b.Err())
}

func TestHExpireOrdersSecondsBeforeFieldsToken(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HExpire("k", 60, "f1")
	assert.Equal(t, []string{"k", "60", "FIELDS", "1", "f1"}, b.Commands()[0].ArgumentStrings())
}

func TestHRandFieldWithCountAndValues(t *testing.T) {
	b := batch.NewStandaloneBatch(false).HRandFieldWithCount("k", -5, true)
	assert.Equal(t, []string{"k", "-5", "WITHVALUES"}, b.Commands()[0].ArgumentStrings())
}
