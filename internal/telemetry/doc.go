// Package telemetry wires the ambient observability stack for graphsim:
// logrus loggers, Prometheus collectors for comparison runs, and an
// OpenTelemetry tracer provider with a stdout or no-op exporter.
//
// Everything here is optional for library callers. The similarity package
// accepts a logrus.FieldLogger, a trace.Tracer and a *Metrics, and falls
// back to silent defaults when they are absent.
package telemetry
