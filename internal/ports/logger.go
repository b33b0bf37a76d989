package ports

import "github.com/seiskit/sgynorm/pkg/log"

// Logger is the structured logging abstraction used throughout the
// application layer. It is an alias for pkg/log.Logger so adapters and
// callers share one definition.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
