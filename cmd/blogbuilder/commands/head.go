package commands

import (
	"context"
	"io"
	"os"

	"git.home.luguber.info/inful/blogbuilder/internal/compose"
	"git.home.luguber.info/inful/blogbuilder/internal/head"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// HeadCmd implements the 'head' command.
type HeadCmd struct {
	out io.Writer
}

func (h *HeadCmd) Run(_ *Global, root *CLI) error {
	_, res, err := root.resolve(context.Background(), metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	w := h.out
	if w == nil {
		w = os.Stdout
	}
	return renderHead(w, res)
}

func renderHead(w io.Writer, res *compose.Resolved) error {
	return head.Render(w, res.Head())
}
