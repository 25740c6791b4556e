// dela - unify task discovery and invocation across build/task files.
package main

import (
	"os"

	_ "github.com/delacli/dela/internal/bootstrap"
	"github.com/delacli/dela/cmd/dela/command"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	command.SetVersion(version)
	os.Exit(command.Execute())
}
