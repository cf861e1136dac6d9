package pipeline

import (
	"context"

	"github.com/backmassage/muxshape/internal/ffmpeg"
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/planner"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/pkg/errors"
)

// Outcome is everything known about one resolved save.
type Outcome struct {
	Input  string
	Probe  *probe.ProbeResult
	Result planner.Result
	Args   []string // ffmpeg argument list, binary first
}

// ResolveFile probes input and resolves a copy of template for writing to
// output. template is never modified; every call works on its own Spec.
func ResolveFile(ctx context.Context, p probe.Prober, input, output string, template *format.Spec, flags planner.Flags) (Outcome, error) {
	pr, err := p.Probe(ctx, input)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "probe %s", input)
	}

	spec := template.Clone()
	res, err := planner.Resolve(pr.Source(), spec, output, flags)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "resolve %s", input)
	}

	return Outcome{
		Input:  input,
		Probe:  pr,
		Result: res,
		Args:   ffmpeg.Build(input, res.Options, res.Destination),
	}, nil
}
