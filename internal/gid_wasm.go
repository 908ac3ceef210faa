//go:build wasm

package internal

// wasm runs a single goroutine at a time on one thread, every render context is
// owned by the same logical thread.
func getGID() int64 {
	return 0
}
