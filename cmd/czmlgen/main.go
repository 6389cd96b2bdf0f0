// Command czmlgen generates CZML writer types and writes stored tracks as
// CZML documents.
package main

import (
	"os"

	"github.com/sm665371/czml-writer/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
