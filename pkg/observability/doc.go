/*
Package observability provides Prometheus instrumentation for the transfer
dialogue service.

It tracks turn throughput and latency, failure counts, and executed
transfers, and exposes them over the standard text exposition endpoint.
*/
package observability
