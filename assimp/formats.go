package assimp

/*
#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/importerdesc.h>
#include <assimp/version.h>
*/
import "C"

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"
)

// Version is the version of the linked Assimp library.
type Version struct {
	Major    uint `json:"major" yaml:"major"`
	Minor    uint `json:"minor" yaml:"minor"`
	Patch    uint `json:"patch" yaml:"patch"`
	Revision uint `json:"revision" yaml:"revision"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// LibraryVersion returns the version of the linked Assimp library.
func LibraryVersion() Version {
	return Version{
		Major:    uint(C.aiGetVersionMajor()),
		Minor:    uint(C.aiGetVersionMinor()),
		Patch:    uint(C.aiGetVersionPatch()),
		Revision: uint(C.aiGetVersionRevision()),
	}
}

// Format describes one importer compiled into the library.
type Format struct {
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// SupportedFormats lists the importers registered in the library, in the
// library's own order.
func SupportedFormats() []Format {
	count := int(C.aiGetImportFormatCount())
	formats := make([]Format, 0, count)
	for i := 0; i < count; i++ {
		desc := C.aiGetImportFormatDescription(C.size_t(i))
		if desc == nil {
			continue
		}
		formats = append(formats, Format{
			Name:       C.GoString(desc.mName),
			Extensions: strings.Fields(strings.ToLower(C.GoString(desc.mFileExtensions))),
		})
	}
	return formats
}

// SupportedExtensions returns every importable extension, lower case, without
// a leading dot, sorted and de-duplicated.
func SupportedExtensions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, format := range SupportedFormats() {
		for _, ext := range format.Extensions {
			if _, ok := seen[ext]; ok {
				continue
			}
			seen[ext] = struct{}{}
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// IsExtensionSupported reports whether an importer exists for ext. "obj",
// ".obj" and "*.obj" are all accepted.
func IsExtensionSupported(ext string) bool {
	ext = normalizeExtension(ext)
	if ext == "" {
		return false
	}
	cExt := C.CString("." + ext)
	defer C.free(unsafe.Pointer(cExt))
	return C.aiIsExtensionSupported(cExt) != 0
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, "*")
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}
