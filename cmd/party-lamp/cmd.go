package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"os"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "party-lamp",
		Short: "RGBW lamp controller with a party mode",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")

	return rootCmd
}

type startFlags struct {
	configFile string
	idlePolicy string
}

func (f *startFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configFile, "config", "c", "", "YAML file overriding the built-in wiring.")
	fs.StringVar(&f.idlePolicy, "idle-policy", "", `What restarts the idle timer: "press" or "uptime". Overrides the config file.`)
}

func newStartCmd() *cobra.Command {
	flags := &startFlags{}
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Runs the lamp until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return startLamp(conf)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func loadConfig(f *startFlags) (*Config, error) {
	content := []byte{}
	if f.configFile != "" {
		b, err := os.ReadFile(f.configFile)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		content = b
	}

	conf, err := parseConfig(content)
	if err != nil {
		return nil, err
	}
	if f.idlePolicy != "" {
		conf.IdlePolicy = f.idlePolicy
		if err := conf.validate(); err != nil {
			return nil, err
		}
	}
	return conf, nil
}
