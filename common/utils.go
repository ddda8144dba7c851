package common

import "fmt"

// AssertTrue panics when a programmer error is detected.
func AssertTrue(ok bool, msgAndArgs ...any) {
	if ok {
		return
	}
	if len(msgAndArgs) == 0 {
		panic("assertion failed")
	}
	format, _ := msgAndArgs[0].(string)
	panic(fmt.Sprintf("assertion failed: "+format, msgAndArgs[1:]...))
}
