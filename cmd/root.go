package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/stubDB/cmd/demo"
	"github.com/ValentinKolb/stubDB/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.2"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "stubdb",
		Short: "in-memory simulation store",
		Long: fmt.Sprintf(`stubDB (v%s)

An in-memory, identity-keyed store library written in Go that stands in
for a remote backend during testing and UI preview work, with configurable
simulated latency per operation.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of stubDB",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stubDB v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(demo.DemoCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "codec"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("codec to use for seed and dump files (json, gob)"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
