// Package client implements the interactive application runtime.
//
// It wires terminal UI flows, services, and the background activity worker
// into a single process lifecycle.
package client
