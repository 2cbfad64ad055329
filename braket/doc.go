// SPDX-License-Identifier: MIT
// Package braket submits QAOA circuits to AWS Braket quantum hardware
// and turns the measured shots into the same count tables the local
// simulator produces.
//
// What
//
//   - Runner: a thin client over the Braket control plane and the S3
//     result store. Construct with NewRunner from an aws.Config, or
//     with NewRunnerWithClients to inject fakes in tests.
//   - CheckAccess: a cheap preflight (one SearchDevices call) that
//     distinguishes "credentials lack Braket permissions" from real
//     transport failures before any money is spent.
//   - Run: build the circuit, export OpenQASM, create the quantum
//     task, poll until a terminal state, then fetch and parse
//     results.json from the task's S3 output location.
//   - ParseResult: the result-document decoder, usable on its own for
//     documents fetched elsewhere.
//
// Flow
//
//	CheckAccess ──> CreateQuantumTask ──> poll GetQuantumTask ──> S3 results.json
//
// Per-shot measurement rows are preferred; devices that report only
// aggregate measurementProbabilities fall back to probability times
// shot count. Either way the output is a qaoa.Counts, so
// qaoa.Summarize prints hardware and simulator runs identically.
//
// Observability
//
// The runner never prints. Poll progress surfaces through the
// Config.OnStatus hook, which the command layer wires to its logger.
//
// Errors
//
//   - ErrDeviceARN, ErrOutputBucket, ErrShotCount reject bad Config.
//   - ErrAccessDenied wraps the AWS permission error codes.
//   - ErrTaskFailed carries the device's failure reason.
//   - ErrNoMeasurements, ErrResultFormat reject unusable result
//     documents.
//
// Transport errors wrap the failing operation and the AWS error
// unchanged, so errors.As still reaches the smithy types.
//
// Cost note: a real QPU task bills per shot. The preflight and the
// poll loop are free; CreateQuantumTask is not.
package braket
