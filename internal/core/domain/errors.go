package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInputs is returned when no input argument is given.
	ErrNoInputs = zerr.New("no input specified")

	// ErrUnknownFlag is returned for an argument that looks like a flag but is not one.
	ErrUnknownFlag = zerr.New("unrecognized flag")

	// ErrInputUnreadable is returned when an input can neither be listed nor read as text.
	ErrInputUnreadable = zerr.New("cannot read input")

	// ErrNotDynamicObject is returned when the lister rejects the input as not dynamically loadable.
	ErrNotDynamicObject = zerr.New("not a dynamically loaded file")

	// ErrUnknownReference is returned when the report names an object that was never listed before.
	ErrUnknownReference = zerr.New("cannot find prior reference")

	// ErrPathAlreadyFinal is returned when the root path is finalized a second time.
	ErrPathAlreadyFinal = zerr.New("root path already finalized")

	// ErrReadFailed is returned when the report stream fails mid-read.
	ErrReadFailed = zerr.New("failed to read report")

	// ErrIncompleteRead is returned when a report is closed before it was read to the end.
	ErrIncompleteRead = zerr.New("aborted before end of report")

	// ErrListerStartFailed is returned when the dependency lister cannot be started.
	ErrListerStartFailed = zerr.New("failed to start dependency lister")

	// ErrListerFailed is returned when the dependency lister exits abnormally.
	ErrListerFailed = zerr.New("dependency lister failed")

	// ErrCloseFailed is returned when an input stream cannot be closed.
	ErrCloseFailed = zerr.New("failed to close input")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrGraphWriteFailed is returned when the graph description cannot be written.
	ErrGraphWriteFailed = zerr.New("failed to write graph")
)
