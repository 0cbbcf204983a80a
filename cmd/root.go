package cmd

import (
	"context"
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cocoonstack/hvconf/config"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hvconf",
		Short: "hvconf - hypervisor runtime configuration generator",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.PersistentFlags().String("output-dir", "", "generated configuration directory")
	cmd.PersistentFlags().String("fragment-dir", "", "override fragment directory")
	cmd.PersistentFlags().String("run-dir", "", "runtime state directory")

	_ = viper.BindPFlag("output_dir", cmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("fragment_dir", cmd.PersistentFlags().Lookup("fragment-dir"))
	_ = viper.BindPFlag("run_dir", cmd.PersistentFlags().Lookup("run-dir"))

	viper.SetEnvPrefix("HVCONF")
	viper.AutomaticEnv()

	cmd.AddCommand(
		generateCmd,
		showCmd,
		validateCmd,
		listCmd,
		watchCmd,
		versionCmd,
	)

	return cmd
}()

func initConfig() error {
	conf = config.DefaultConfig()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	_ = viper.ReadInConfig() // optional; missing file is OK

	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	return log.SetupLog(context.Background(), &conf.Log, "")
}

// Execute is the main entry point called from main.go.
func Execute() error {
	ctx, cancel := newCommandContext()
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}
