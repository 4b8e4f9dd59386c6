package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/veneer-dev/veneer/internal/config"
	"github.com/veneer-dev/veneer/internal/errors"
	"github.com/veneer-dev/veneer/pkg/deploy"
)

func deployCmd() *cobra.Command {
	var (
		bucket    string
		region    string
		prefix    string
		dryRun    bool
		skipBuild bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the published site to S3",
		Long: `Publish the site, then upload the output directory to S3.

Credentials come from the default AWS chain (environment, shared
config, instance metadata). The bucket and region default to the
deploy section of veneer.json.

Examples:
  veneer deploy
  veneer deploy --bucket=my-site --region=eu-west-1
  veneer deploy --prefix=staging --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, region, prefix, dryRun, skipBuild)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from veneer.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from veneer.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be uploaded without uploading")
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Upload the existing output directory without rebuilding")

	return cmd
}

func runDeploy(bucket, region, prefix string, dryRun, skipBuild bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if bucket == "" {
		bucket = cfg.Deploy.Bucket
	}
	if region == "" {
		region = cfg.Deploy.Region
	}
	if prefix == "" {
		prefix = cfg.Deploy.Prefix
	}
	if bucket == "" {
		return errors.New("E201")
	}

	if !skipBuild {
		if err := runBuild("", false); err != nil {
			return err
		}
	}
	if _, err := os.Stat(cfg.OutputPath()); err != nil {
		return errors.New("E102").
			WithDetail("Output directory " + cfg.Build.Output + " does not exist").
			WithSuggestion("Run 'veneer build' first, or drop --skip-build")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	var uploader deploy.Uploader
	if dryRun {
		uploader = nopUploader{}
	} else {
		s3Uploader, err := deploy.NewS3Uploader(ctx, bucket, region)
		if err != nil {
			return err
		}
		uploader = s3Uploader
	}

	fmt.Printf("  Deploying %s to s3://%s\n", cfg.Build.Output, bucket)
	fmt.Println()

	var bar *progressbar.ProgressBar
	deployer := deploy.NewDeployer(uploader, deploy.Options{
		Prefix: prefix,
		DryRun: dryRun,
		OnProgress: func(p deploy.Progress) {
			if bar == nil {
				bar = progressbar.Default(int64(p.Total), "uploading")
			}
			bar.Add(1)
		},
	})

	start := time.Now()
	n, err := deployer.Deploy(ctx, cfg.OutputPath())
	if bar != nil {
		bar.Close()
	}
	if err != nil {
		return err
	}

	if dryRun {
		success("Would upload %d files", n)
		return nil
	}
	success("Uploaded %d files in %s", n, time.Since(start).Round(time.Millisecond))
	return nil
}

// nopUploader backs --dry-run; the deployer never calls it.
type nopUploader struct{}

func (nopUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	return nil
}
