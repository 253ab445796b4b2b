package batch

import "github.com/edirooss/valkeybatch/command"

// Publish posts message to the given channel. Command Response: integer
// (number of clients that received the message).
//
// https://valkey.io/commands/publish/
func (b *BaseBatch[T]) Publish(channel, message string) *T {
	return b.addCmd(command.NewText("PUBLISH", channel, message), convInt("PUBLISH"))
}

// SPublish is Publish scoped to a cluster shard channel. Command
// Response: integer.
//
// https://valkey.io/commands/spublish/
func (b *BaseBatch[T]) SPublish(shardChannel, message string) *T {
	return b.addCmd(command.NewText("SPUBLISH", shardChannel, message), convInt("SPUBLISH"))
}

// PubSubChannels lists the currently active channels, optionally filtered
// by glob pattern. Command Response: array of text.
//
// https://valkey.io/commands/pubsub-channels/
func (b *BaseBatch[T]) PubSubChannels(pattern string) *T {
	ab := newArgBuilder()
	if pattern != "" {
		ab.token(pattern)
	}
	return b.addCmd(command.NewText("PUBSUB", append([]string{"CHANNELS"}, ab.build()...)...), convArray("PUBSUB CHANNELS"))
}

// PubSubNumPat returns the number of patterns subscribed to via PSUBSCRIBE.
// Command Response: integer.
//
// https://valkey.io/commands/pubsub-numpat/
func (b *BaseBatch[T]) PubSubNumPat() *T {
	return b.addCmd(command.NewText("PUBSUB", "NUMPAT"), convInt("PUBSUB NUMPAT"))
}

// PubSubNumSub returns the number of subscribers for each given channel.
// Command Response: array, passed through as delivered (over RESP2 a flat
// channel, count, channel, count ... array); it is not folded into a map.
//
// https://valkey.io/commands/pubsub-numsub/
func (b *BaseBatch[T]) PubSubNumSub(channels ...string) *T {
	return b.addCmd(command.NewText("PUBSUB", append([]string{"NUMSUB"}, channels...)...), convArray("PUBSUB NUMSUB"))
}
