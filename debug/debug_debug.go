//go:build debug

package debug

const Debug = true

func init() {
	println("WARNING -- DEBUG FLAG IS ON")
}
