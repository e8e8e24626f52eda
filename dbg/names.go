// Package dbg holds tools for looking at geometry while debugging: readable
// names for values, colored one line descriptions, and PNG renderings that
// can be printed straight to an iTerm compatible terminal.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values into random readable names. It
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Turning pointers into names makes colliders and
// triangles much easier to tell apart in logs.

var (
	memoMx sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic
	// as a reminder that a name means nothing across runs.
	petname.NonDeterministicMode()
}

// Name returns the name memoized for obj, making one up on first use. obj
// must be comparable.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMx.Lock()
	defer memoMx.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
