package assimp

/*
#cgo !assimp_static pkg-config: assimp
#cgo assimp_static LDFLAGS: -lassimp -lz
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lstdc++

#include "include/assimp_shim.h"
#include <stdlib.h>
#include <stdint.h>
*/
import "C"
