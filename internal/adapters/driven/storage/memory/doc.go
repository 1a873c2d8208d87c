// Package memory provides in-memory implementations of driven port
// interfaces for testing. Nothing is persisted; each store lives only
// as long as the process.
package memory
