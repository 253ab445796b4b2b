package command_test

import (
	"testing"

	"github.com/edirooss/valkeybatch/bval"
	"github.com/edirooss/valkeybatch/command"
	"github.com/stretchr/testify/assert"
)

func TestNewText(t *testing.T) {
	c := command.NewText("SET", "k", "v")
	assert.Equal(t, "SET", c.Name())
	assert.Equal(t, []string{"k", "v"}, c.ArgumentStrings())
	assert.False(t, c.IsBinary())
}

func TestNewBinaryWithBinaryArgument(t *testing.T) {
	payload := []byte{0x00, 0xFF, 0x01, 0xFE}
	c := command.NewBinary("SET").AddText("k").AddArgument(bval.FromBytes(payload))
	assert.Equal(t, "SET", c.Name())
	assert.True(t, c.IsBinary())
	args := c.Arguments()
	assert.Equal(t, []byte("k"), args[0])
	assert.Equal(t, payload, args[1])
}

func TestAddArgumentWithTextConvertibleValueKeepsBinaryFlagUnlessAlreadySet(t *testing.T) {
	c := command.NewBinary("GETRANGE").AddArgument(bval.FromText("k"))
	assert.True(t, c.IsBinary())
}

func TestArgumentsIsDefensiveCopy(t *testing.T) {
	c := command.NewText("GET", "k")
	args := c.Arguments()
	args[0][0] = 'X'
	assert.Equal(t, []string{"k"}, c.ArgumentStrings())
}

func TestCommandIsImmutableAcrossAppends(t *testing.T) {
	base := command.NewText("MSET")
	a := base.AddText("k1").AddText("v1")
	b := base.AddText("k2").AddText("v2")
	assert.Equal(t, []string{"k1", "v1"}, a.ArgumentStrings())
	assert.Equal(t, []string{"k2", "v2"}, b.ArgumentStrings())
}
