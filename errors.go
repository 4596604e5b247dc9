package cliconf

import "errors"

// The error kinds reported by the parsers and the typed queries. All
// errors returned by this package wrap exactly one of these, so callers
// can branch with errors.Is.
var (
	// ErrUnknownOption reports a name or short character no descriptor claims.
	ErrUnknownOption = errors.New("unknown option")

	// ErrOptionNotSpecified reports a typed query against an option that
	// was never seen and has no default.
	ErrOptionNotSpecified = errors.New("option was not specified")

	// ErrWrongTypeCast reports a typed query whose type does not match
	// the option's stored value.
	ErrWrongTypeCast = errors.New("wrong type requested for option value")

	// ErrInvalidArgument reports a supplied value that failed conversion
	// to the option's type.
	ErrInvalidArgument = errors.New("invalid argument for option")

	// ErrOptionDoesNotAcceptArgument reports a value supplied to a flag.
	ErrOptionDoesNotAcceptArgument = errors.New("option does not accept an argument")

	// ErrMissingArgumentForOption reports a value option with no value.
	ErrMissingArgumentForOption = errors.New("missing argument for option")

	// ErrInvalidConfigFile reports a malformed line in a config file.
	ErrInvalidConfigFile = errors.New("invalid config file")

	// ErrConfigFileNotFound reports an explicitly requested config file
	// that exists in none of the search directories.
	ErrConfigFileNotFound = errors.New("config file not found")
)

// Aliases for the two query error kinds under their traditional names.
var (
	ErrNoParameter          = ErrOptionNotSpecified
	ErrInvalidParameterType = ErrWrongTypeCast
)
