// Package observability provides structured logging for the cost estimator.
//
// This package implements:
//   - zap logger construction from configuration (json or console)
//   - Request ID propagation through context.Context
//   - A context-aware Logger that tags every line with the request ID
package observability
