// Package server exposes the progress of long scans over HTTP.
//
// The endpoint is optional and disabled unless a listen address is
// configured. It serves Prometheus metrics on /metrics and a liveness probe
// on /healthz. Metrics are fed directly by the chunk driver through the
// progress observer interfaces, so a scrape always reflects the last
// completed chunk of every engine.
package server
