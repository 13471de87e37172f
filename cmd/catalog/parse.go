package main

import (
	"encoding/json"
	"strings"

	"shopchat/internal/intent"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "parse <message>",
		Short: "Print the intent the chat parser extracts from a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Nop()
			if verbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
			}

			result := intent.NewParser(nil, log).Parse(strings.Join(args, " "))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log price parsing warnings to stderr")
	return cmd
}
