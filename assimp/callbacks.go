package assimp

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

//export goAssimpProgress
func goAssimpProgress(progress C.float, userData unsafe.Pointer) C.bool {
	if userData == nil {
		return C.bool(true)
	}
	handle := cgo.Handle(*(*C.uintptr_t)(userData))
	state, ok := handle.Value().(*progressState)
	if !ok {
		return C.bool(true)
	}
	return C.bool(state.update(float32(progress)))
}

//export goAssimpLog
func goAssimpLog(message *C.char) {
	if message == nil {
		return
	}
	forwardNativeLog(C.GoString(message))
}
