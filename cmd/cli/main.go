package main

import (
	"github.com/amirasaad/propdesc/internal/cli"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
