package planner

import "github.com/backmassage/muxshape/internal/format"

// Flags are the extraction modes requested by the caller for one save.
type Flags struct {
	ExtractingAudioOnly   bool // video is dropped
	ExtractingSingleFrame bool // audio is dropped
	Splitting             bool // output is cut into segments; codecs must be explicit
}

// Result is the outcome of a successful resolution.
type Result struct {
	Options       format.Options
	Destination   string
	StillSequence bool

	// Notes describe each adjustment made, in pipeline order.
	Notes []string
}
