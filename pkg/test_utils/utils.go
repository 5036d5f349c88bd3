// Package testutils provides small test helpers shared across the
// repository's table-driven test suites.
package testutils

import "testing"

// RunParallel runs fn as a subtest named name, marking it parallel first
// when parallel is true. Centralizing the t.Run/t.Parallel pairing keeps
// every table-driven test in the repository consistent without each one
// repeating the same four lines.
func RunParallel(t *testing.T, parallel bool, name string, fn func(t *testing.T)) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		if parallel {
			t.Parallel()
		}
		fn(t)
	})
}
