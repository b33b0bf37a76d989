// Package domain contains the core domain entities and value objects for sgynorm.
//
// This package represents the innermost layer of the architecture. It has no
// dependencies on infrastructure concerns (file system, logging, codecs) and
// contains only the values the normalization algorithm operates on.
//
// # Entities
//
//   - [TraceFile]: A decoded trace file — opaque structural headers plus the
//     numeric sample payload of each trace
//   - [Trace]: One ordered sequence of amplitude samples with its header
//   - [FileSet]: The ordered set of relative paths discovered under the input root
//
// # Design Principles
//
// Domain entities are:
//   - Free of infrastructure dependencies
//   - Focused on the normalization invariants (global maximum, mirroring)
//   - Testable without mocks or external systems
package domain
