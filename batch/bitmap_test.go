package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestBitCountBareKey(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BitCount("k", nil, nil, false)
	assert.Equal(t, []string{"k"}, b.Commands()[0].ArgumentStrings())
}

func TestBitCountWithBitRange(t *testing.T) {
	var start, end int64 = 0, 10
	b := batch.NewStandaloneBatch(false).BitCount("k", &start, &end, true)
	assert.Equal(t, []string{"k", "0", "10", "BIT"}, b.Commands()[0].ArgumentStrings())
}

func TestBitOpAndOrdersDestinationBeforeKeys(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BitOpAnd("dst", "k1", "k2")
	assert.Equal(t, []string{"AND", "dst", "k1", "k2"}, b.Commands()[0].ArgumentStrings())
}

func TestBitOpNotRequiresExactlyOneKey(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BitOpNot("dst", "k1")
	assert.NoError(t, b.Err())
	assert.Equal(t, []string{"NOT", "dst", "k1"}, b.Commands()[0].ArgumentStrings())
}

func TestBitFieldAssemblesMultipleOps(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BitField("k",
		batch.BitFieldOp{Sub: "GET", Type: "u8", Offset: "0"},
		batch.BitFieldOp{Sub: "SET", Type: "u8", Offset: "8", Value: 255},
		batch.BitFieldOp{Sub: "OVERFLOW", Overflow: "SAT"},
	)
	assert.Equal(t,
		[]string{"k", "GET", "u8", "0", "SET", "u8", "8", "255", "OVERFLOW", "SAT"},
		b.Commands()[0].ArgumentStrings(),
	)
}

func TestBitFieldROrejectsNonGet(t *testing.T) {
	b := batch.NewStandaloneBatch(false).BitFieldRO("k", batch.BitFieldOp{Sub: "SET", Type: "u8", Offset: "0", Value: 1})
	assert.Error(t, b.Err())
}
