//go:build unix

package resolvers

import "golang.org/x/sys/unix"

// resolverConfigReadable reports whether the stub resolver configuration can
// be read by this process.
func resolverConfigReadable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
