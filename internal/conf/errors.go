package conf

import "errors"

// Outcomes of [Resolver.Resolve] other than a resolved [Config]. Returned
// errors wrap one of these together with the underlying cause, so callers
// should test for them with errors.Is.
var (
	// ErrHelpRequested is returned after usage text has been printed because
	// the help switch was given. It is a successful early exit, not a failure.
	ErrHelpRequested = errors.New("help requested")
	// ErrParse indicates malformed command line input, such as an unknown
	// flag or a flag missing its value.
	ErrParse = errors.New("invalid command line")
	// ErrConfigFileUnreadable indicates the file named by the config option
	// could not be read or decoded.
	ErrConfigFileUnreadable = errors.New("configuration file unreadable")
	// ErrInvalidPort indicates the merged port value is not an integer.
	ErrInvalidPort = errors.New("invalid port")
)
