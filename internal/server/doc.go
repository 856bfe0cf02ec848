// Package server manages the lifecycle of the inbound transport: startup,
// signal-driven graceful shutdown, and resource release.
package server
