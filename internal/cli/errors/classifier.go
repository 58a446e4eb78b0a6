package errors

import (
	"strings"
)

type ErrorKind string

const (
	ErrorKindNotFound ErrorKind = "not-found"
	ErrorKindStore    ErrorKind = "store"
	ErrorKindLaunch   ErrorKind = "launch"
	ErrorKindFormat   ErrorKind = "format"
	ErrorKindConfig   ErrorKind = "config"
	ErrorKindOther    ErrorKind = "other"
)

type ClassifiedError struct {
	Kind    ErrorKind
	Message string
	Hint    string // User-friendly suggestion
	Raw     error
}

func (e ClassifiedError) Error() string {
	return e.Message
}

func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "not found"):
		return ClassifiedError{
			Kind:    ErrorKindNotFound,
			Message: err.Error(),
			Hint:    "Run 'toolregistry scan' to discover tools, or check the name with 'toolregistry list'",
			Raw:     err,
		}
	case strings.Contains(msg, "unsupported export format"):
		return ClassifiedError{
			Kind:    ErrorKindFormat,
			Message: err.Error(),
			Hint:    "Supported formats are 'json' and 'markdown'",
			Raw:     err,
		}
	case strings.Contains(msg, "registry db") || strings.Contains(msg, "timeout") || strings.Contains(msg, "persist tool"):
		return ClassifiedError{
			Kind:    ErrorKindStore,
			Message: err.Error(),
			Hint:    "Is another toolregistry process holding the database? Check the --db path.",
			Raw:     err,
		}
	case strings.Contains(msg, "exit status") || strings.Contains(msg, "signal:") || strings.Contains(msg, "executable file"):
		return ClassifiedError{
			Kind:    ErrorKindLaunch,
			Message: err.Error(),
			Hint:    "The tool process failed to run. Is a Python interpreter on PATH?",
			Raw:     err,
		}
	case strings.Contains(msg, "config") || strings.Contains(msg, "yaml"):
		return ClassifiedError{
			Kind:    ErrorKindConfig,
			Message: err.Error(),
			Hint:    "Check the config file syntax or pass --config with a valid path.",
			Raw:     err,
		}
	default:
		return ClassifiedError{
			Kind:    ErrorKindOther,
			Message: err.Error(),
			Hint:    "An unexpected error occurred.",
			Raw:     err,
		}
	}
}
