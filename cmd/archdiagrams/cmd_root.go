package main

import (
	"context"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/learningmyway/archdiagrams/pkg/emit"
)

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archdiagrams",
		Short: "Write the Jenkins VPN infrastructure diagrams (PlantUML) and an HTML viewer to ./" + emit.OutputDir,
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), osfs.New("."), cmd.OutOrStdout())
		},
	}
}

func runGenerate(ctx context.Context, fsys billy.Filesystem, stdout io.Writer) error {
	_, err := emit.New(fsys, emit.WithOutput(stdout)).Run(ctx)
	return err
}
