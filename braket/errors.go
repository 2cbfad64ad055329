// SPDX-License-Identifier: MIT
package braket

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	// ErrDeviceARN reports a Config without a device ARN.
	ErrDeviceARN = errors.New("braket: device ARN must be set")

	// ErrOutputBucket reports a Config without an output S3 bucket.
	ErrOutputBucket = errors.New("braket: output S3 bucket must be set")

	// ErrShotCount reports a non-positive shot budget.
	ErrShotCount = errors.New("braket: shot count must be positive")

	// ErrAccessDenied reports AWS credentials that cannot reach the
	// Braket API. RequiredActions lists the IAM permissions to grant.
	ErrAccessDenied = errors.New("braket: access denied for these AWS credentials")

	// ErrTaskFailed reports a quantum task that reached FAILED or
	// CANCELLED instead of COMPLETED; the message carries the
	// device's failure reason when one was reported.
	ErrTaskFailed = errors.New("braket: quantum task did not complete")

	// ErrNoMeasurements reports a result document with neither
	// per-shot measurements nor a probability map.
	ErrNoMeasurements = errors.New("braket: task result carries no measurements")

	// ErrResultFormat reports a result document whose payload does
	// not match the gate-model schema the parser expects.
	ErrResultFormat = errors.New("braket: unexpected task result payload")
)

// RequiredActions lists the IAM actions a hardware run exercises.
// Printed by the command layer when CheckAccess reports
// ErrAccessDenied.
var RequiredActions = []string{
	"braket:SearchDevices",
	"braket:GetDevice",
	"braket:CreateQuantumTask",
	"braket:GetQuantumTask",
	"s3:PutObject",
	"s3:GetObject",
}

// classify maps AWS permission errors onto ErrAccessDenied and wraps
// everything else with the failing operation, leaving the smithy
// error chain intact for errors.As.
func classify(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "AccessDenied", "UnauthorizedOperation":
			return fmt.Errorf("%w: %s: %s", ErrAccessDenied, op, apiErr.ErrorMessage())
		}
	}

	return fmt.Errorf("braket: %s: %w", op, err)
}
