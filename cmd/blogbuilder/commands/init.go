package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/git"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Dir      string `short:"d" help:"Directory to write theme.yaml and site.yaml into" default:"." type:"path"`
	Force    bool   `help:"Overwrite existing configuration files"`
	NoDetect bool   `name:"no-detect" help:"Do not infer repository settings from the git origin remote"`
}

func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	var origin *git.Origin
	if !i.NoDetect {
		o, err := git.DetectOrigin(i.Dir)
		if err != nil {
			slog.Debug("No git origin detected; using placeholders", logfields.Path(i.Dir), logfields.Error(err))
		} else {
			slog.Info("Detected git origin", slog.String("repository", o.FullName()), slog.String("branch", o.Branch))
			origin = o
		}
	}

	fmt.Println("Initializing blog configuration")
	paths, err := config.Init(i.Dir, i.Force, origin)
	if err != nil {
		fmt.Println("Initialization failed")
		return err
	}
	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return nil
}
