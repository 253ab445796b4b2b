package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestZAddRejectsEmptyMembersScores(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZAdd("k", map[string]float64{}, nil)
	assert.Error(t, b.Err())
}

func TestZAddSingleMemberScoreOrder(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZAdd("k", map[string]float64{"m": 1.5}, nil)
	assert.Equal(t, []string{"k", "1.5", "m"}, b.Commands()[0].ArgumentStrings())
}

func TestZAddWithOptionsPrecedesScorePairs(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZAdd("k", map[string]float64{"m": 1}, &batch.ZAddOptions{NX: true, CH: true})
	assert.Equal(t, []string{"k", "NX", "CH", "1", "m"}, b.Commands()[0].ArgumentStrings())
}

// TestZAddEmitsMembersInAscendingOrder locks in a deterministic wire vector
// for multi-member input, since map iteration order is otherwise randomized
// per run.
func TestZAddEmitsMembersInAscendingOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		b := batch.NewStandaloneBatch(false).ZAdd("k", map[string]float64{"zm": 3, "am": 1, "mm": 2}, nil)
		assert.Equal(t, []string{"k", "1", "am", "2", "mm", "3", "zm"}, b.Commands()[0].ArgumentStrings())
	}
}

func TestZMPopEmitsNumkeysAndMinOrMax(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZMPop([]string{"k1", "k2"}, batch.ZMax, nil)
	assert.Equal(t, []string{"2", "k1", "k2", "MAX"}, b.Commands()[0].ArgumentStrings())
}

func TestBZMPopOrdersTimeoutNumkeysKeysThenMinMax(t *testing.T) {
	count := int64(1)
	b := batch.NewStandaloneBatch(false).BZMPop(0.5, []string{"k1"}, batch.ZMin, &count)
	assert.Equal(t, []string{"0.5", "1", "k1", "MIN", "COUNT", "1"}, b.Commands()[0].ArgumentStrings())
}

func TestZRangeWithLimitAndWithScores(t *testing.T) {
	offset, count := int64(0), int64(10)
	b := batch.NewStandaloneBatch(false).ZRange("k", "0", "-1", &batch.ZRangeOptions{
		ByScore: true, LimitOffset: &offset, LimitCount: &count, WithScores: true,
	})
	assert.Equal(t, []string{"k", "0", "-1", "BYSCORE", "LIMIT", "0", "10", "WITHSCORES"}, b.Commands()[0].ArgumentStrings())
}

func TestZInterStoreWithWeightsAndAggregate(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZInterStore("dst", []string{"k1", "k2"}, &batch.ZStoreOptions{
		Weights: []float64{1, 2}, Aggregate: batch.ZAggSum,
	})
	assert.Equal(t, []string{"dst", "2", "k1", "k2", "WEIGHTS", "1", "2", "AGGREGATE", "SUM"}, b.Commands()[0].ArgumentStrings())
}

func TestZMScoreRejectsEmptyMembers(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZMScore("k")
	assert.Error(t, b.Err())
}

func TestZDiffStoreEmitsNumkeys(t *testing.T) {
	b := batch.NewStandaloneBatch(false).ZDiffStore("dst", []string{"k1", "k2", "k3"})
	assert.Equal(t, []string{"dst", "3", "k1", "k2", "k3"}, b.Commands()[0].ArgumentStrings())
}
