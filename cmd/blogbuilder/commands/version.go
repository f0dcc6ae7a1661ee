package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogbuilder/internal/version"
)

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (VersionCmd) Run(_ *Global, _ *CLI) error {
	fmt.Println(version.String())
	return nil
}
