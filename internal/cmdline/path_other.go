//go:build !windows

package cmdline

const invalidPathChars = "\x00"
