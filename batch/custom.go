package batch

import "github.com/edirooss/valkeybatch/command"

// CustomCommand appends an arbitrary command, verbatim, for any server
// operation without a dedicated builder method. The first argument is the
// command name; the rest are appended as a text command, whose arguments
// keep the exact bytes of each Go string. Command Response: opaque (shape
// unknown to the builder, passed through unconverted).
func (b *BaseBatch[T]) CustomCommand(args ...string) *T {
	if len(args) == 0 {
		return b.argErr("CUSTOM COMMAND", "args must not be empty")
	}
	return b.addCmd(command.NewText(args[0], args[1:]...), convOpaque())
}
