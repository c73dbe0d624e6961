// Command abilower lowers public declarations of a Swift-like source
// language into C-ABI thunks and C function declarations for a JVM-style
// host to bind against.
package main

import "abilower/cmd"

func main() {
	cmd.Execute()
}
