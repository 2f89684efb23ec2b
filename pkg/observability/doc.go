/*
Package observability provides monitoring for the pushdown engine.

Metrics turns engine lifecycle hooks into Prometheus counters and histograms, so any
host (CLI, HTTP server, MCP server) can expose them with promhttp.
*/
package observability
