// Package debug holds the build-tag controlled debug flag shared across
// sudogic components.
package debug

// Assert does nothing unless the debug build tag is set, in which case it
// panics if the condition is false.
func Assert(condition bool, message ...string) {
	if Debug && !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
