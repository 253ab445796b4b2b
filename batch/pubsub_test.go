package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/valkeybatch/batch"
)

func TestPublish(t *testing.T) {
	b := batch.NewStandaloneBatch(false).Publish("ch", "hello")
	assert.Equal(t, []string{"ch", "hello"}, b.Commands()[0].ArgumentStrings())
}

func TestPubSubChannelsWithoutPattern(t *testing.T) {
	b := batch.NewStandaloneBatch(false).PubSubChannels("")
	cmd := b.Commands()[0]
	assert.Equal(t, "PUBSUB", cmd.Name())
	assert.Equal(t, []string{"CHANNELS"}, cmd.ArgumentStrings())
}

func TestPubSubChannelsWithPattern(t *testing.T) {
	b := batch.NewStandaloneBatch(false).PubSubChannels("news.*")
	assert.Equal(t, []string{"CHANNELS", "news.*"}, b.Commands()[0].ArgumentStrings())
}
