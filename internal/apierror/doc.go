// Package apierror provides error inspection capabilities for Zenoti API errors.
// It centralizes the logic for identifying different types of errors returned by
// the Zenoti REST API, eliminating the need for string-based error checking
// throughout the codebase.
package apierror
