package cli

import (
	"fmt"
)

// version is the version of the program, expected to be set at build time
// via the linker.
var version = "development build"

// VersionCommand is the command `version`, which prints the program version.
type VersionCommand struct{}

// Execute executes the version command.
func (command *VersionCommand) Execute(args []string) error {
	fmt.Println("propgrid", version)
	return nil
}
