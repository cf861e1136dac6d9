package ffmpeg

// Command collects ffmpeg arguments in insertion order. The zero value is
// ready to use.
type Command struct {
	args []string
}

// Add appends a flag and its value.
func (c *Command) Add(flag, value string) *Command {
	c.args = append(c.args, flag, value)
	return c
}

// AddFlag appends a flag that takes no value.
func (c *Command) AddFlag(flag string) *Command {
	c.args = append(c.args, flag)
	return c
}

// Args returns a copy of the collected arguments.
func (c *Command) Args() []string {
	out := make([]string, len(c.args))
	copy(out, c.args)
	return out
}
