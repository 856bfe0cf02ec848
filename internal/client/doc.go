// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the server adapter, the local ciphertext cache
// and background synchronization into a single process lifecycle.
package client
