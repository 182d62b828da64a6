package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "rdom",
		Short:        "Round-trip C# source through a document object model",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			var path *string
			if cfg.Log.File != "" {
				path = &cfg.Log.File
			}
			commonlog.Configure(cfg.Log.Verbosity+verbose, path)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "settings file (default: nearest .rdom.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "more log output, repeat for debug")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newRoundtripCmd())
	rootCmd.AddCommand(newSameCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
