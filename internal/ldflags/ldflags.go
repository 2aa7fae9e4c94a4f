// Package ldflags receives build-time variable assignments, e.g.
//
//   go build -ldflags "-X github.com/codeactual/aliasfixture/internal/ldflags.Version=$(git describe --always --dirty)"
package ldflags

// Version is value like "8107551-master(-dirty)".
var Version string

func init() {
	if Version == "" {
		Version = "unknown (ldflags.Version not set via -ldflags at build time)"
	}
}
