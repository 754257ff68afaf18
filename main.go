package main

import (
	"log"

	"github.com/charkit/pwgen/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
