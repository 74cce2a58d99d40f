package commands

import (
	"fmt"
	"os"
)

func ExitOnError(err error) {
	fmt.Fprintf(os.Stderr, "fotolio error: %s\n", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`usage: fotolio <command>

commands:
  run <config.yml>   start the server
  version            print the version
  help               print this message`)
}
