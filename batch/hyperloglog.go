package batch

import "github.com/edirooss/valkeybatch/command"

// PfAdd adds elements to the HyperLogLog data structure stored at key.
// Command Response: boolean (true if the internal register was altered).
//
// https://valkey.io/commands/pfadd/
func (b *BaseBatch[T]) PfAdd(key string, elements ...string) *T {
	return b.addCmd(command.NewText("PFADD", append([]string{key}, elements...)...), convBool("PFADD"))
}

// PfCount returns the approximated cardinality of the union of the
// HyperLogLog data structures stored at keys. Command Response: integer.
//
// https://valkey.io/commands/pfcount/
func (b *BaseBatch[T]) PfCount(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("PFCOUNT", "keys must not be empty")
	}
	return b.addCmd(command.NewText("PFCOUNT", keys...), convInt("PFCOUNT"))
}

// PfMerge merges the HyperLogLog data structures stored at sourceKeys
// into destination. Command Response: non-nullable text ("OK").
//
// https://valkey.io/commands/pfmerge/
func (b *BaseBatch[T]) PfMerge(destination string, sourceKeys ...string) *T {
	return b.addCmd(command.NewText("PFMERGE", append([]string{destination}, sourceKeys...)...), convText("PFMERGE"))
}
