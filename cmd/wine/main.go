package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/GloriousEggroll/proton-wine/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			if exit.Message != "" {
				fmt.Fprintln(os.Stderr, exit.Message)
			}
			os.Exit(exit.Code)
		}
		log.Fatal(err)
	}
}
