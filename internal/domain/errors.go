package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrorCode is the stable prefix reported in result error messages so that
// callers can match failures programmatically.
type ErrorCode string

const (
	CodeInvalidFileFormat ErrorCode = "E001"
	CodeInvalidColumn     ErrorCode = "E002"
	CodeExcelProcessing   ErrorCode = "E003"
	CodeOutOfMemory       ErrorCode = "E010"
	CodeIOError           ErrorCode = "E011"
	CodePermissionDenied  ErrorCode = "E012"
	CodeUnexpected        ErrorCode = "E999"
)

// ProcessingError is a classified operation failure. Hint, when present, is
// a remediation suggestion appended to the reported message.
type ProcessingError struct {
	Code    ErrorCode
	Message string
	Hint    string
}

func (e *ProcessingError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s. %s", e.Code, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidFileFormatError(message string) *ProcessingError {
	return &ProcessingError{
		Code:    CodeInvalidFileFormat,
		Message: message,
		Hint:    "Upload a non-empty Excel workbook (.xlsx) within the configured size limit",
	}
}

func NewInvalidColumnError(message string) *ProcessingError {
	return &ProcessingError{
		Code:    CodeInvalidColumn,
		Message: message,
		Hint:    "Check that the column header appears within the first rows of the sheet and is spelled correctly",
	}
}

func NewExcelProcessingError(message string) *ProcessingError {
	return &ProcessingError{Code: CodeExcelProcessing, Message: message}
}

// Classify maps an arbitrary error to its ProcessingError form. Already
// classified errors pass through; anything unrecognized becomes E999 with
// the underlying cause text.
func Classify(err error) *ProcessingError {
	var perr *ProcessingError
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, os.ErrPermission) {
		return &ProcessingError{Code: CodePermissionDenied, Message: "access to the uploaded data was denied"}
	}
	if errors.Is(err, fs.ErrClosed) {
		return &ProcessingError{Code: CodeIOError, Message: "the uploaded data could not be read"}
	}
	return &ProcessingError{Code: CodeUnexpected, Message: fmt.Sprintf("unexpected error: %v", err)}
}
