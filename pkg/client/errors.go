package client

import (
	"errors"
	"fmt"
)

// ErrorClass represents a classification of fetch failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx responses from the lexicon API.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses from the lexicon API.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport failures and timeouts.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassDecode represents malformed response bodies.
	ErrorClassDecode ErrorClass = "decode"
)

// PageNotFoundMessage is the user-facing text shown when the requested page
// does not exist. The wording is part of the UI contract.
const PageNotFoundMessage = "Page not found. The lexicon might be empty or you've gone past the last page."

// ErrPageNotFound is returned when the lexicon API answers 404 for a page.
var ErrPageNotFound = errors.New("page not found")

// LexiconError represents a failed concepts fetch with the context needed
// for display and observability. Message is what the viewer shows the user.
type LexiconError struct {
	StatusCode int
	ErrorClass ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *LexiconError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lexicon %s error (status %d): %s: %v",
			e.ErrorClass, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("lexicon %s error (status %d): %s",
		e.ErrorClass, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LexiconError) Unwrap() error {
	return e.Err
}

// UserMessage extracts the display text for an error. For a LexiconError it
// is the Message field; anything else falls back to the error text.
func UserMessage(err error) string {
	var lexErr *LexiconError
	if errors.As(err, &lexErr) && lexErr.Message != "" {
		return lexErr.Message
	}
	return err.Error()
}

// classifyStatus categorizes an HTTP status code for metrics and handling.
func classifyStatus(statusCode int) ErrorClass {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return ErrorClassClient
	case statusCode >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}

// pageNotFoundError builds the 404 failure with its fixed display message.
func pageNotFoundError() *LexiconError {
	return &LexiconError{
		StatusCode: 404,
		ErrorClass: ErrorClassClient,
		Message:    PageNotFoundMessage,
		Err:        ErrPageNotFound,
	}
}

// httpStatusError builds the failure for any other non-2xx status.
// The message carries the numeric status for the user.
func httpStatusError(statusCode int) *LexiconError {
	return &LexiconError{
		StatusCode: statusCode,
		ErrorClass: classifyStatus(statusCode),
		Message:    fmt.Sprintf("The lexicon request failed with HTTP status %d.", statusCode),
	}
}

// networkError builds the failure for a transport-level error.
func networkError(err error) *LexiconError {
	return &LexiconError{
		ErrorClass: ErrorClassNetwork,
		Message:    fmt.Sprintf("Failed to reach the lexicon: %v.", err),
		Err:        err,
	}
}

// decodeError builds the failure for an unparseable response body.
func decodeError(err error) *LexiconError {
	return &LexiconError{
		StatusCode: 200,
		ErrorClass: ErrorClassDecode,
		Message:    fmt.Sprintf("Failed to parse the lexicon response: %v.", err),
		Err:        err,
	}
}
