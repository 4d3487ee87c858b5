// Command xlfmt renders values, format strings and whole workbooks the way
// Excel displays them.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/TsubasaBE/go-xlnumfmt/internal/cli"
	"github.com/TsubasaBE/go-xlnumfmt/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("xlfmt: load configuration")
	}
	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
