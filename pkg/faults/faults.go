// Package faults defines the error taxonomy shared by every maestro command.
// Commands convert any fault they catch into a one-line message and an exit
// code; only InvalidCommand is allowed to escape the command boundary.
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide message and exit code.
type Kind int

const (
	// ConfigParse means a configuration file was unreadable or not valid YAML.
	ConfigParse Kind = iota
	// SchemaDiscovery means a document's kind was missing or unrecognized.
	SchemaDiscovery
	// StructuralValidation means a document failed its schema.
	StructuralValidation
	// SchemaFile means the schema file itself is malformed.
	SchemaFile
	// DelegateExecution means an external engine or deploy backend failed.
	DelegateExecution
	// ProcessSpawn means launching a detached child process failed.
	ProcessSpawn
	// InvalidCommand means no command matched; a routing contract violation.
	InvalidCommand
)

func (k Kind) String() string {
	switch k {
	case ConfigParse:
		return "config parse"
	case SchemaDiscovery:
		return "schema discovery"
	case StructuralValidation:
		return "structural validation"
	case SchemaFile:
		return "schema file"
	case DelegateExecution:
		return "delegate execution"
	case ProcessSpawn:
		return "process spawn"
	case InvalidCommand:
		return "invalid command"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error is a classified failure with an optional cause and exit code override.
type Error struct {
	Kind Kind
	Msg  string
	Code int // 0 means the default mapping (1) applies
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a fault of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a fault of the given kind around an underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// WithCode sets an explicit exit code on the fault and returns it.
func (e *Error) WithCode(code int) *Error {
	e.Code = code
	return e
}

// KindOf extracts the fault kind from err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is (or wraps) a fault of kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// ExitCode maps an error to the process exit code contract: nil is success,
// a fault carrying an explicit code keeps it, and anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var fe *Error
	if errors.As(err, &fe) && fe.Code != 0 {
		return fe.Code
	}
	return 1
}
