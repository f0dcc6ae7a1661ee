package commands

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Out     string `short:"o" help:"Composed configuration output file" default:"config.json" type:"path"`
	Format  string `short:"f" help:"Output format (json|yaml); defaults from the output file extension"`
	HeadOut string `name:"head-out" help:"Also write the rendered head fragment to this file" type:"path"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	format, err := outputFormat(b.Format, b.Out)
	if err != nil {
		return err
	}

	start := time.Now()
	_, res, err := root.resolve(context.Background(), metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	if err := writeOutputs(res, b.Out, format, b.HeadOut); err != nil {
		return err
	}

	fmt.Printf("Composed configuration written to %s (%d site overrides, %s)\n",
		b.Out, res.Overrides(), time.Since(start).Round(time.Millisecond))
	return nil
}
