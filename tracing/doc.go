// Package tracing is a thin wrapper over OpenTelemetry used by the parts
// of the module that touch the file system. It is kept separate so that
// applications which do not need tracing never initialise a provider;
// uninitialised, every helper degrades to a no-op span.
package tracing
