package display

import (
	"fmt"
	"io"

	"github.com/backmassage/muxshape/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _ __ ___  _   ___  _____| |__   __ _ _ __   ___
| '_ `+"`"+` _ \| | | \ \/ / __| '_ \ / _`+"`"+` | '_ \ / _ \
| | | | | | |_| |>  <\__ \ | | | (_| | |_) |  __/
|_| |_| |_|\__,_/_/\_\___/_| |_|\__,_| .__/ \___|
                                     |_|
`)
	if term.NC != "" {
		fmt.Fprintln(w, term.NC)
	}
}
