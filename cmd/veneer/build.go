package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/veneer-dev/veneer/internal/config"
	"github.com/veneer-dev/veneer/internal/dev"
)

func buildCmd() *cobra.Command {
	var (
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Publish the site to the output directory",
		Long: `Publish the site to the output directory.

A veneer site is an ordinary Go program that publishes itself, so this
command runs the project's site program once and reports the result.

Examples:
  veneer build
  veneer build --output=public
  veneer build --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from veneer.json)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory before publishing")

	return cmd
}

func runBuild(output string, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Build.Output = output
	}

	if clean {
		info("Cleaning %s...", cfg.Build.Output)
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Println("  Publishing site...")

	builder := dev.NewSiteBuilder(dev.BuilderConfig{
		ProjectDir: cfg.Dir(),
		Env:        []string{"VENEER_OUTPUT=" + cfg.OutputPath()},
	})

	result := builder.Build(ctx)
	if !result.Success {
		if result.Output != "" {
			fmt.Fprintln(os.Stderr, result.Output)
		}
		return result.Error
	}

	success("Published to %s in %s", cfg.Build.Output, result.Duration.Round(time.Millisecond))
	return nil
}
