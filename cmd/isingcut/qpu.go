// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	awstypes "github.com/aws/aws-sdk-go-v2/service/braket/types"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isingcut/braket"
	"github.com/katalvlaran/isingcut/qaoa"
)

var (
	qpuRegion string
	qpuDevice string
	qpuBucket string
	qpuPrefix string
	qpuShots  int64
	qpuPoll   time.Duration
	qpuGamma  float64
	qpuBeta   float64
	qpuLayers int
)

var qpuCmd = &cobra.Command{
	Use:   "qpu",
	Short: "Run the QAOA circuit on AWS Braket hardware",
	Long: `Submit the QAOA circuit to a Braket device and print the measured
outcome table. Requires AWS credentials with Braket access and a
writable S3 results bucket; each shot is billed by AWS.

The device defaults to BRAKET_DEVICE_ARN when set.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runQPU(cmd); err != nil {
			log.Fatal(err)
		}
	},
}

func runQPU(cmd *cobra.Command) error {
	ctx := cmd.Context()

	g, err := loadGraph()
	if err != nil {
		return err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(qpuRegion))
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	cfg := braket.Config{
		DeviceARN:    qpuDevice,
		Bucket:       qpuBucket,
		Prefix:       qpuPrefix,
		Shots:        qpuShots,
		PollInterval: qpuPoll,
		OnStatus: func(taskARN string, status awstypes.QuantumTaskStatus) {
			log.Printf("task %s: %s", taskARN, status)
		},
	}
	runner, err := braket.NewRunner(awsCfg, cfg)
	if err != nil {
		return err
	}

	if err := runner.CheckAccess(ctx); err != nil {
		if errors.Is(err, braket.ErrAccessDenied) {
			fmt.Println("Braket access is not enabled for these AWS credentials.")
			fmt.Println("Grant the following IAM actions and retry:")
			for _, action := range braket.RequiredActions {
				fmt.Printf("  %s\n", action)
			}
		}

		return err
	}

	params := qaoa.Params{Gamma: qpuGamma, Beta: qpuBeta, Layers: qpuLayers}
	log.Printf("submitting %d shots to %s", cfg.Shots, cfg.DeviceARN)
	res, err := runner.Run(ctx, g, params)
	if err != nil {
		return err
	}

	fmt.Printf("Task %s completed.\n", res.TaskARN)
	sum, err := qaoa.Summarize(g, res.Counts, int(res.Shots))
	if err != nil {
		return err
	}
	printSummary(sum)

	return nil
}

// defaultDeviceARN prefers the BRAKET_DEVICE_ARN environment variable
// over the built-in walkthrough device.
func defaultDeviceARN() string {
	if arn := os.Getenv("BRAKET_DEVICE_ARN"); arn != "" {
		return arn
	}

	return braket.DefaultDeviceARN
}

func init() {
	qpuCmd.Flags().StringVar(&qpuRegion, "region", "us-east-1", "AWS region of the Braket device")
	qpuCmd.Flags().StringVar(&qpuDevice, "device", defaultDeviceARN(), "Braket device ARN")
	qpuCmd.Flags().StringVar(&qpuBucket, "bucket", "", "S3 bucket for task results (required)")
	qpuCmd.Flags().StringVar(&qpuPrefix, "prefix", braket.DefaultPrefix, "S3 key prefix for task results")
	qpuCmd.Flags().Int64Var(&qpuShots, "shots", braket.DefaultShots, "measurement shots (billed by AWS)")
	qpuCmd.Flags().DurationVar(&qpuPoll, "poll", braket.DefaultPollInterval, "status poll interval")
	qpuCmd.Flags().Float64Var(&qpuGamma, "gamma", 1.0, "phase-separation angle")
	qpuCmd.Flags().Float64Var(&qpuBeta, "beta", 0.5, "mixer angle")
	qpuCmd.Flags().IntVar(&qpuLayers, "layers", 1, "QAOA depth p")
	_ = qpuCmd.MarkFlagRequired("bucket")
	rootCmd.AddCommand(qpuCmd)
}
