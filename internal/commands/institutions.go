package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/banksms/internal/recognizer"
)

func newInstitutionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "institutions",
		Short: "List supported banks and their sender tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSENDERS")
			for _, r := range recognizer.DefaultDirectory().Recognizers() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Institution, r.Institution.DisplayName(), strings.Join(r.SenderTokens, ","))
			}
			return tw.Flush()
		},
	}
}
