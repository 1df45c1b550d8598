//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo CXXFLAGS: -std=c++17 -I${SRCDIR}
#cgo LDFLAGS: -lkllsketch
#cgo !darwin LDFLAGS: -lstdc++
#cgo darwin LDFLAGS: -lc++ -L/usr/local/lib
#cgo linux LDFLAGS: -L/usr/local/lib -L/usr/local/lib64

#include "kll.h"
*/
import "C"
