// SPDX-License-Identifier: MIT
package braket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	awstypes "github.com/aws/aws-sdk-go-v2/service/braket/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/qaoa"
)

// schemaHeader identifies the Braket IR dialect of an action payload.
type schemaHeader struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// openQASMAction is the task action envelope for OpenQASM programs.
type openQASMAction struct {
	Header schemaHeader `json:"braketSchemaHeader"`
	Source string       `json:"source"`
}

// Run executes the QAOA circuit for g on the configured device: build
// and export the program, create the quantum task, poll until a
// terminal status, then fetch results.json from the task's S3 output
// and tally the measured bitstrings.
//
// Run blocks for the device's queue time; bound it with the context.
// A context cancellation abandons polling but does not cancel the
// remote task.
func (r *Runner) Run(ctx context.Context, g graph.Graph, p qaoa.Params) (TaskResult, error) {
	c, err := qaoa.Build(g, p)
	if err != nil {
		return TaskResult{}, err
	}
	program, err := c.OpenQASM()
	if err != nil {
		return TaskResult{}, err
	}
	action, err := json.Marshal(openQASMAction{
		Header: schemaHeader{Name: "braket.ir.openqasm.program", Version: "1"},
		Source: program,
	})
	if err != nil {
		return TaskResult{}, fmt.Errorf("braket: encode action: %w", err)
	}

	created, err := r.quantum.CreateQuantumTask(ctx, &awsbraket.CreateQuantumTaskInput{
		Action:            aws.String(string(action)),
		ClientToken:       aws.String(uuid.NewString()),
		DeviceArn:         aws.String(r.cfg.DeviceARN),
		OutputS3Bucket:    aws.String(r.cfg.Bucket),
		OutputS3KeyPrefix: aws.String(r.cfg.Prefix),
		Shots:             aws.Int64(r.cfg.Shots),
	})
	if err != nil {
		return TaskResult{}, classify("create quantum task", err)
	}
	taskARN := aws.ToString(created.QuantumTaskArn)

	final, err := r.await(ctx, taskARN)
	if err != nil {
		return TaskResult{}, err
	}
	counts, err := r.fetchCounts(ctx, g.Order(), final)
	if err != nil {
		return TaskResult{}, err
	}

	return TaskResult{TaskARN: taskARN, Counts: counts, Shots: r.cfg.Shots}, nil
}

// await polls the task until COMPLETED, surfacing FAILED and
// CANCELLED as ErrTaskFailed with the device's reason. Every observed
// status is reported through the OnStatus hook.
func (r *Runner) await(ctx context.Context, taskARN string) (*awsbraket.GetQuantumTaskOutput, error) {
	for {
		out, err := r.quantum.GetQuantumTask(ctx, &awsbraket.GetQuantumTaskInput{
			QuantumTaskArn: aws.String(taskARN),
		})
		if err != nil {
			return nil, classify("get quantum task", err)
		}
		if r.cfg.OnStatus != nil {
			r.cfg.OnStatus(taskARN, out.Status)
		}

		switch out.Status {
		case awstypes.QuantumTaskStatusCompleted:
			return out, nil
		case awstypes.QuantumTaskStatusFailed, awstypes.QuantumTaskStatusCancelled:
			reason := aws.ToString(out.FailureReason)
			if reason == "" {
				reason = "no reason reported"
			}

			return nil, fmt.Errorf("%w: %s: %s", ErrTaskFailed, out.Status, reason)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.cfg.PollInterval):
		}
	}
}

// fetchCounts downloads results.json from the completed task's output
// location and parses it into bitstring counts.
func (r *Runner) fetchCounts(ctx context.Context, order int, task *awsbraket.GetQuantumTaskOutput) (qaoa.Counts, error) {
	bucket := aws.ToString(task.OutputS3Bucket)
	dir := aws.ToString(task.OutputS3Directory)
	if bucket == "" || dir == "" {
		return nil, fmt.Errorf("%w: completed task reports no output location", ErrResultFormat)
	}

	key := path.Join(dir, "results.json")
	obj, err := r.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("braket: fetch s3://%s/%s: %w", bucket, key, err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("braket: read result document: %w", err)
	}

	return ParseResult(data, order, r.cfg.Shots)
}
