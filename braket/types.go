// SPDX-License-Identifier: MIT
package braket

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	awstypes "github.com/aws/aws-sdk-go-v2/service/braket/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/katalvlaran/isingcut/qaoa"
)

const (
	// DefaultDeviceARN targets the IonQ Harmony QPU in us-east-1, the
	// device the walkthrough assumes. Override per Config or the
	// command layer's environment handling.
	DefaultDeviceARN = "arn:aws:braket:us-east-1::device/qpu/ionq/Harmony"

	// DefaultShots keeps a hardware run affordable while still
	// resolving the demo distribution clearly.
	DefaultShots int64 = 500

	// DefaultPollInterval paces GetQuantumTask calls. QPU queues are
	// minutes long, so five seconds is plenty fine-grained.
	DefaultPollInterval = 5 * time.Second

	// DefaultPrefix namespaces task outputs inside the result bucket.
	DefaultPrefix = "isingcut"
)

// Config parameterizes a hardware run.
type Config struct {
	// DeviceARN selects the QPU or managed simulator.
	DeviceARN string
	// Bucket is the S3 bucket Braket writes task results into. It
	// must exist and be writable by the Braket service role.
	Bucket string
	// Prefix is the key prefix for task outputs inside Bucket.
	// Empty means DefaultPrefix.
	Prefix string
	// Shots is the measurement budget. Hardware bills per shot.
	Shots int64
	// PollInterval paces the status poll. Zero means
	// DefaultPollInterval.
	PollInterval time.Duration
	// OnStatus, when set, observes every polled task status. The
	// runner itself never prints.
	OnStatus func(taskARN string, status awstypes.QuantumTaskStatus)
}

// DefaultConfig returns the walkthrough settings. Bucket stays empty;
// there is no sensible default for someone else's S3 namespace.
func DefaultConfig() Config {
	return Config{
		DeviceARN:    DefaultDeviceARN,
		Prefix:       DefaultPrefix,
		Shots:        DefaultShots,
		PollInterval: DefaultPollInterval,
	}
}

func (c Config) validate() error {
	if c.DeviceARN == "" {
		return ErrDeviceARN
	}
	if c.Bucket == "" {
		return ErrOutputBucket
	}
	if c.Shots < 1 {
		return fmt.Errorf("%w: got %d", ErrShotCount, c.Shots)
	}

	return nil
}

var (
	_ QuantumClient = (*awsbraket.Client)(nil)
	_ ObjectClient  = (*s3.Client)(nil)
)

// QuantumClient is the slice of the Braket control plane the runner
// uses. *braket.Client from the AWS SDK satisfies it.
type QuantumClient interface {
	SearchDevices(ctx context.Context, params *awsbraket.SearchDevicesInput, optFns ...func(*awsbraket.Options)) (*awsbraket.SearchDevicesOutput, error)
	CreateQuantumTask(ctx context.Context, params *awsbraket.CreateQuantumTaskInput, optFns ...func(*awsbraket.Options)) (*awsbraket.CreateQuantumTaskOutput, error)
	GetQuantumTask(ctx context.Context, params *awsbraket.GetQuantumTaskInput, optFns ...func(*awsbraket.Options)) (*awsbraket.GetQuantumTaskOutput, error)
}

// ObjectClient is the slice of the S3 API the runner uses to fetch
// result documents. *s3.Client from the AWS SDK satisfies it.
type ObjectClient interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Runner submits circuits to Braket and retrieves their results.
type Runner struct {
	cfg     Config
	quantum QuantumClient
	objects ObjectClient
}

// NewRunner builds a Runner on real AWS clients derived from awsCfg.
func NewRunner(awsCfg aws.Config, cfg Config) (*Runner, error) {
	return NewRunnerWithClients(awsbraket.NewFromConfig(awsCfg), s3.NewFromConfig(awsCfg), cfg)
}

// NewRunnerWithClients builds a Runner on caller-supplied clients.
// Tests inject fakes here; production code goes through NewRunner.
func NewRunnerWithClients(quantum QuantumClient, objects ObjectClient, cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return &Runner{cfg: cfg, quantum: quantum, objects: objects}, nil
}

// TaskResult is the outcome of one hardware run.
type TaskResult struct {
	// TaskARN identifies the quantum task for console lookups.
	TaskARN string
	// Counts tallies measured bitstrings, node 0 leftmost, directly
	// consumable by qaoa.Summarize.
	Counts qaoa.Counts
	// Shots echoes the requested measurement budget.
	Shots int64
}
