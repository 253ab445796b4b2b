package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestLPushRejectsEmptyValues(t *testing.T) {
	b := batch.NewStandaloneBatch(false).LPush("k")
	assert.Error(t, b.Err())
}

func TestLInsertBeforeAndAfter(t *testing.T) {
	b := batch.NewStandaloneBatch(false).
		LInsert("k", true, "pivot", "val").
		LInsert("k", false, "pivot", "val")
	cmds := b.Commands()
	assert.Equal(t, []string{"k", "BEFORE", "pivot", "val"}, cmds[0].ArgumentStrings())
	assert.Equal(t, []string{"k", "AFTER", "pivot", "val"}, cmds[1].ArgumentStrings())
}

func TestLMPopEmitsNumkeysBeforeKeys(t *testing.T) {
	count := int64(2)
	b := batch.NewStandaloneBatch(false).LMPop([]string{"k1", "k2"}, batch.ListLeft, &count)
	assert.Equal(t, []string{"2", "k1", "k2", "LEFT", "COUNT", "2"}, b.Commands()[0].ArgumentStrings())
}

func TestLMPopRejectsEmptyKeys(t *testing.T) {
	b := batch.NewStandaloneBatch(false).LMPop(nil, batch.ListLeft, nil)
	assert.Error(t, b.Err())
}

func TestBLMPopOrdersTimeoutThenNumkeys(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BLMPop(1.5, []string{"k1"}, batch.ListRight, nil)
	assert.Equal(t, []string{"1.5", "1", "k1", "RIGHT"}, b.Commands()[0].ArgumentStrings())
}

func TestBLPopAppendsTimeoutAfterKeys(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BLPop(2, "k1", "k2")
	assert.Equal(t, []string{"k1", "k2", "2"}, b.Commands()[0].ArgumentStrings())
}

func TestLPosWithCountSwitchesConverterToArray(t *testing.T) {
	count := int64(3)
	b := batch.NewStandaloneBatch(false).LPos("k", "el", nil, &count, nil)
	assert.Equal(t, []string{"k", "el", "COUNT", "3"}, b.Commands()[0].ArgumentStrings())
	_, isArray := b.Converters()[0]([]any{int64(1)}).([]any)
	assert.True(t, isArray)
}
