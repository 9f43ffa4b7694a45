package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit codes. A run that produced and wrote its dataset exits 0.
const (
	ExitSuccess      = 0 // dataset written, validated or inspected
	ExitFailure      = 1 // a row spent its attempt budget, the run was interrupted, or a dataset failed validation
	ExitCommandError = 2 // the run never started or could not persist: bad config, missing CSV or database, I/O error
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeConfig     = "E001" // config file or flag rejected
	ErrCodeGenerate   = "E002" // generation did not complete
	ErrCodeIO         = "E003" // reading or writing a dataset file
	ErrCodeStore      = "E004" // SQLite store failure
	ErrCodeValidation = "E005" // dataset breaks an invariant
)

// ExitError carries the process exit code out of a command's RunE so
// main can tell a rejected dataset from a broken invocation.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // what the command was doing, e.g. "failed to store run"
	Err     error  // cause, e.g. a NoAcceptableSampleError; may be nil
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code to a generation, store or export error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps a command error to the process exit code. Errors that
// are not ExitErrors count as failed runs.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results either as human-readable reports
// or as a CLIResponse envelope. Run logs never go through it; they use slog
// on stderr.
type OutputFormatter struct {
	Format    string    // "text" or "json"
	Writer    io.Writer // results: summaries, violations, the "done" marker
	ErrWriter io.Writer // --verbose diagnostics, kept off Writer so JSON stays parseable
	Verbose   bool
}

// CLIResponse is the JSON envelope of every command under --format json.
type CLIResponse struct {
	Status string      `json:"status"`           // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`   // GenerateResult, ValidationResult, InspectResult, ...
	Error  *CLIError   `json:"error,omitempty"`  // set when Status is "error"
	RunID  string      `json:"run_id,omitempty"` // stored run the output refers to
}

// CLIError describes a failed command in the JSON envelope.
type CLIError struct {
	Code    string      `json:"code"`              // one of the ErrCode constants
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // e.g. the ValidationResult with its violations
}

// Success prints a command result that is not tied to a stored run.
func (f *OutputFormatter) Success(data interface{}) error {
	return f.SuccessForRun("", data)
}

// SuccessForRun is Success with the JSON envelope tagged by a stored run id.
func (f *OutputFormatter) SuccessForRun(runID string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
			RunID:  runID,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error reports a failed command. Text mode prints details only with
// --verbose.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err under code and returns it wrapped with exitCode.
func (f *OutputFormatter) Fail(exitCode int, code, message string, err error) error {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %v", message, err)
	}
	_ = f.Error(code, msg, nil)
	return WrapExitError(exitCode, message, err)
}

// VerboseLog prints a --verbose diagnostic such as the number of rows loaded.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns ErrWriter, or Writer when none is set.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
