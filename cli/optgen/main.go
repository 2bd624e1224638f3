package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/spvc-rs/optgen/cmd"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})

	cmd.Execute()
}
