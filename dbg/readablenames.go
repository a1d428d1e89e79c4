package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Assigns random readable names to arbitrary pointers, so that a debug dump
// full of segments doesn't print as a wall of indistinguishable hex
// addresses. Names are memoized for the life of the process and generated
// only on demand, so the leak is harmless unless you're actually debugging.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in demand order, so keep them nondeterministic as
	// a reminder that a name never means the same thing across two runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
