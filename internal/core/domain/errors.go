package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownVariant is returned when a record carries a kind tag with no registered variant.
	ErrUnknownVariant = zerr.New("unknown variant")

	// ErrMalformedInput is returned when input does not parse as a structured record.
	ErrMalformedInput = zerr.New("malformed input")

	// ErrUnexpectedVariant is returned when a decoded entity is not of the requested type.
	ErrUnexpectedVariant = zerr.New("unexpected variant")

	// ErrNotImplemented is returned when an operation is invoked on a variant that does not support it.
	ErrNotImplemented = zerr.New("operation not implemented for variant")

	// ErrRequestReadFailed is returned when a request source cannot be read.
	ErrRequestReadFailed = zerr.New("failed to read code request")

	// ErrRequestWriteFailed is returned when generated output cannot be written.
	ErrRequestWriteFailed = zerr.New("failed to write code request output")

	// ErrRequestNotFound is returned when a source is neither a readable file nor a stored request.
	ErrRequestNotFound = zerr.New("code request not found")

	// ErrUnsupportedFormat is returned when a text format other than json or yaml is requested.
	ErrUnsupportedFormat = zerr.New("unsupported format, expected 'json' or 'yaml'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidGuard is returned when the configured guard is not a valid Python identifier.
	ErrInvalidGuard = zerr.New("invalid guard name, expected a python identifier")

	// ErrInvalidLanguage is returned when the configured fence language contains whitespace or backticks.
	ErrInvalidLanguage = zerr.New("invalid fence language")

	// ErrFlakeWriteFailed is returned when a flake file cannot be generated.
	ErrFlakeWriteFailed = zerr.New("failed to write flake")

	// ErrDependencyConflict is returned when one package is requested in more than one version.
	ErrDependencyConflict = zerr.New("conflicting versions of one dependency")

	// ErrGitStageFailed is returned when a generated file cannot be staged.
	ErrGitStageFailed = zerr.New("failed to stage file")

	// ErrRunFailed is returned when the external runtime reports a failure.
	ErrRunFailed = zerr.New("code request run failed")

	// ErrStoreCreateFailed is returned when the request store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create request store directory")

	// ErrStoreReadFailed is returned when a stored request cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored request")

	// ErrStoreWriteFailed is returned when a request cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write stored request")

	// ErrWatchFailed is returned when the request file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch request file")
)
