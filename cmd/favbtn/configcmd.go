package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/favorite/config"
)

var configResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config (or the resolved one with --resolved)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configResolved {
			loaded, logger, closeLog, err := setup(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()
			logger.Debug("printing resolved config")
			cfg = loaded
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&configResolved, "resolved", false, "apply the config file, .env and environment first")
	rootCmd.AddCommand(configCmd)
}
