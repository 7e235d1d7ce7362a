// Package obs provides OpenTelemetry tracing and metrics for the query
// engine. Providers are optional: when none is installed, spans and
// instruments are no-ops, so an embedded engine pays nothing unless the
// host application initializes exporters.
package obs
