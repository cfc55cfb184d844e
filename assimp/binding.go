package assimp

/*
#include "include/assimp_shim.h"
#include <stdlib.h>
#include <stdint.h>

// Implemented in Go by goAssimpProgress.
extern _Bool goAssimpProgress(float progress, void* user_data);
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"unsafe"
)

// ReadFileSync imports the file at path with a fresh, single-use importer.
//
// flags is passed to the library unchanged. progress, when non-nil, is called
// on the calling goroutine with the library's progress fraction; returning
// false asks the import to stop, in which case ReadFileSync returns a
// *CanceledError even if the library finished anyway. A nil progress behaves
// like one that always returns true.
//
// On success the caller owns the returned Scene and must Release it.
func ReadFileSync(path string, flags PostProcess, progress ProgressFunc) (*Scene, error) {
	if path == "" {
		return nil, newValidationError("path cannot be empty", nil)
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var (
		state    *progressState
		callback C.assimp_progress_callback
		userData unsafe.Pointer
	)
	if progress != nil {
		state = &progressState{fn: progress}
		handle := cgo.NewHandle(state)
		defer handle.Delete()

		slot := (*C.uintptr_t)(C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0)))))
		defer C.free(unsafe.Pointer(slot))
		*slot = C.uintptr_t(handle)

		callback = C.assimp_progress_callback(C.goAssimpProgress)
		userData = unsafe.Pointer(slot)
	}

	// The shim keeps its error slot in thread-local storage, so the read and
	// the slot lookup have to happen on the same OS thread.
	runtime.LockOSThread()
	nativeReadMu.RLock()
	ptr := C.assimp_read_file_with_progress(cPath, C.uint(flags), callback, userData)
	nativeReadMu.RUnlock()
	var nativeErr error
	if ptr == nil {
		nativeErr = lastError(path)
	}
	runtime.UnlockOSThread()

	if state != nil {
		if err := state.err(); err != nil {
			if ptr != nil {
				C.assimp_shim_release_scene(ptr)
			}
			return nil, err
		}
	}
	if ptr == nil {
		return nil, nativeErr
	}
	return newScene(ptr, path, flags), nil
}

// lastError reads the calling thread's error slot. The caller must hold the
// OS thread that performed the read.
func lastError(path string) error {
	code := int(C.assimp_shim_get_last_error_code())
	errPtr := C.assimp_shim_get_last_error()
	if errPtr == nil {
		return newRuntimeError("unknown error", nil)
	}
	return classifyNativeError(path, C.GoString(errPtr), code)
}
