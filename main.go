package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/codingconcepts/animerelay/commands"
)

func main() {
	log.SetFlags(0)

	var opts commands.Options

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serves the release and image relay",
		Example: "animerelay serve --port 8000",
		Args:    cobra.NoArgs,
		RunE:    commands.Serve(&opts),
	}
	commands.BindUpstreamFlags(serveCmd, &opts)
	commands.BindServeFlags(serveCmd, &opts)

	latestCmd := &cobra.Command{
		Use:     "latest",
		Short:   "Prints the latest release document",
		Example: "animerelay latest [pre]",
		Args:    cobra.MaximumNArgs(1),
		RunE:    commands.Latest(&opts),
	}
	commands.BindUpstreamFlags(latestCmd, &opts)

	rootCmd := &cobra.Command{
		Use:          "animerelay",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd, latestCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
