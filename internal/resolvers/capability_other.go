//go:build !unix

package resolvers

// resolverConfigReadable reports false: there is no resolv.conf outside unix.
func resolverConfigReadable(string) bool {
	return false
}
