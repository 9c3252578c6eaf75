package main

import (
	"io"

	"github.com/joho/godotenv"
	configpkg "github.com/minhyannv/agent-run-go/pkg/config"
	loggerpkg "github.com/minhyannv/agent-run-go/pkg/logger"
	"github.com/spf13/cobra"
)

// cliEnv is the process surface the commands read from and write to.
type cliEnv struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	// SkipDotEnv disables .env loading.
	SkipDotEnv bool
}

// globalOptions holds the persistent flags.
type globalOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd(env cliEnv) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "agent-run",
		Short: "Send a goal and context files to a chat model and write a markdown report",
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.PersistentFlags().StringVar(&opts.configFile, "config", configpkg.DefaultFile, "YAML file with model defaults (the default file may be absent)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging to stderr")

	root.AddCommand(newRunCmd(env, opts))
	return root
}

// loadConfig merges .env, the YAML defaults file and the environment.
// Variables already set in the environment win over .env entries. The YAML
// file may be absent only when --config was left at its default.
func loadConfig(env cliEnv, opts *globalOptions, configExplicit bool) (configpkg.Config, error) {
	if !env.SkipDotEnv {
		_ = godotenv.Load()
	}
	cfg, err := configpkg.Load(opts.configFile, !configExplicit, env.Getenv)
	if err != nil {
		return configpkg.Config{}, err
	}
	cfg.Verbose = opts.verbose
	return cfg, nil
}

func newLogger(env cliEnv, verbose bool) loggerpkg.Logger {
	if !verbose || env.Stderr == nil {
		return loggerpkg.NopLogger{}
	}
	return loggerpkg.NewWriterLogger(env.Stderr, loggerpkg.LevelDebug)
}
