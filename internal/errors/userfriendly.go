package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/tonylturner/cbusdefs/cbus"
	"github.com/tonylturner/cbusdefs/frame"
	"github.com/tonylturner/cbusdefs/internal/capture"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapCodeError wraps a failed registry lookup of input in space.
func WrapCodeError(err error, space cbus.Space, input string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Cannot decode %q as %s", input, space),
		Reason:  extractCodeReason(err),
		Hint:    "Codes may be given as decimal, 0x-prefixed hex, or by mnemonic",
		Try:     fmt.Sprintf("cbusdefs list %s", space),
		Err:     err,
	}
}

// WrapCaptureError wraps capture read failures with user-friendly context
func WrapCaptureError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to read capture %s", path),
		Reason:  extractCaptureReason(err),
		Hint:    "Captures must be pcap or pcapng files recorded from a SocketCAN interface",
		Try:     fmt.Sprintf("tshark -r %s -c 1 -T fields -e frame.protocols", path),
		Err:     err,
	}
}

// WrapCatalogError wraps catalog load and validation failures.
func WrapCatalogError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Definition catalog %s is not usable", path),
		Reason:  err.Error(),
		Hint:    "Regenerate a reference catalog and compare",
		Try:     "cbusdefs catalog export --out reference.yaml",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Config files may be YAML (.yaml, .yml) or TOML (.toml)",
		Try:     fmt.Sprintf("cbusdefs --config %s --log-level debug version", configPath),
		Err:     err,
	}
}

func extractCodeReason(err error) string {
	var undef *cbus.UndefinedCodeError
	if stderrors.As(err, &undef) {
		return fmt.Sprintf("0x%02X has no assigned meaning in %s", undef.Value, undef.Space)
	}
	if stderrors.Is(err, cbus.ErrInvalidMinorVersion) {
		return "Minor version bytes must be ASCII letters"
	}
	msg := err.Error()
	if strings.Contains(msg, "invalid syntax") || strings.Contains(msg, "out of range") || strings.Contains(msg, "neither a byte value") {
		return "Input is not a byte value or known mnemonic"
	}

	return "Registry lookup failed"
}

func extractCaptureReason(err error) string {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return "File does not exist"
	case stderrors.Is(err, fs.ErrPermission):
		return "Permission denied"
	case stderrors.Is(err, capture.ErrUnsupportedLinkType):
		return "Capture does not contain SocketCAN frames"
	case stderrors.Is(err, frame.ErrInvalidLen), stderrors.Is(err, frame.ErrInvalidID):
		return "Capture contains invalid CAN frames"
	}

	return "Capture could not be parsed"
}
