// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [TraceReader]: Decodes a trace file into headers and sample arrays
//   - [TraceWriter]: Re-encodes a trace file to an output path
//   - [ReportRepository]: Persists the run report
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/segy, internal/adapters) implement them
// with concrete implementations (the SEG-Y codec, the file system, zerolog).
//
// This separation enables:
//   - Testing application logic with in-memory codecs
//   - Swapping the trace-file format without changing the algorithm
//   - Clear boundaries and dependency direction
package ports
