package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codingconcepts/animerelay/relay"
)

// Latest resolves the latest release document once and prints it.
func Latest(opts *Options) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(opts.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		var channel string
		if len(args) > 0 {
			channel = args[0]
		}

		resolver := relay.NewResolver(log, opts.Client(), opts.Config())
		doc, err := resolver.Resolve(cmd.Context(), channel)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	}
}
