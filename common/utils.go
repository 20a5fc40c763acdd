package common

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
)

type Vec3 = mgl32.Vec3

// AssertTrue panics when a caller broke a contract the program relies on.
func AssertTrue(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// Unreachable marks a branch that only a contract violation can reach.
func Unreachable(format string, args ...any) {
	panic(fmt.Sprintf("unreachable: "+format, args...))
}
