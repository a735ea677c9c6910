package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showDetails bool

var askCmd = &cobra.Command{
	Use:   "ask [utterance]",
	Short: "Answer a single utterance and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		reply, err := app.Assistant.Handle(ctx, userID, strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, reply.Response)
		if showDetails {
			fmt.Fprintf(out, "intent=%q source=%s score=%.1f", reply.Result.Label, reply.Result.Source, reply.Result.Score)
			if reply.Sentiment != nil {
				fmt.Fprintf(out, " sentiment=%s(%.2f)", reply.Sentiment.Label, reply.Sentiment.Score)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "print intent, source and sentiment")
	rootCmd.AddCommand(askCmd)
}
