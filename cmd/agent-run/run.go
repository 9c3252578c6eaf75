package main

import (
	configpkg "github.com/minhyannv/agent-run-go/pkg/config"
	"github.com/minhyannv/agent-run-go/pkg/runner"
	"github.com/spf13/cobra"
)

// runOptions holds the flags of the run subcommand.
type runOptions struct {
	goal    string
	context string
	tools   string
	report  string
}

func newRunCmd(env cliEnv, global *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(env, global, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			exec := runner.New(cfg,
				runner.WithOutput(cmd.OutOrStdout()),
				runner.WithLogger(newLogger(env, cfg.Verbose)),
			)
			_, err = exec.Execute(cmd.Context(), runner.NewRequest(opts.goal, opts.context, opts.tools, opts.report))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.goal, "goal", "", "Natural-language goal sent to the model")
	cmd.Flags().StringVar(&opts.context, "context", "", "Comma-separated context file paths")
	cmd.Flags().StringVar(&opts.tools, "tools", "", "Tool list echoed into the report")
	cmd.Flags().StringVar(&opts.report, "report", configpkg.DefaultReportPath, "Report output path")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}
