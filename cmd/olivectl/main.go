// Command olivectl seeds the record store and renders reports from the command line.
package main

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"olive/config"
)

var logger = log.New("olivectl")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "olivectl",
		Short:         "Olive lifecycle platform admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetLevel(log.WARN)
		},
	}
	root.AddCommand(newSeedCmd(), newReportCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// loadConfig is swapped in tests.
var loadConfig = config.Load
