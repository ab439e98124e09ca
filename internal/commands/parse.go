package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/banksms/internal/parser"
)

func newParseCommand(opts *globalOptions) *cobra.Command {
	var sender, body string
	var timestamp int64

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a single message and print the result as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := opts.logger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			txn := parser.New(nil, logger).ParseMessage(sender, body, timestamp)
			if txn == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no transaction recognized")
				return nil
			}

			out, err := yaml.Marshal(txn)
			if err != nil {
				return fmt.Errorf("marshaling result: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "sender identifier (required)")
	cmd.Flags().StringVar(&body, "body", "", "message body (required)")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "message time in milliseconds since epoch")
	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}
