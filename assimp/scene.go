package assimp

/*
#include "include/assimp_shim.h"
#include <assimp/scene.h>
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"
)

// SceneFlags mirrors the AI_SCENE_FLAGS_* bits of aiScene.mFlags.
type SceneFlags uint32

const (
	SceneFlagIncomplete        SceneFlags = 0x1
	SceneFlagValidated         SceneFlags = 0x2
	SceneFlagValidationWarning SceneFlags = 0x4
	SceneFlagNonVerboseFormat  SceneFlags = 0x8
	SceneFlagTerrain           SceneFlags = 0x10
	SceneFlagAllowShared       SceneFlags = 0x20
)

func (f SceneFlags) Incomplete() bool        { return f&SceneFlagIncomplete != 0 }
func (f SceneFlags) Validated() bool         { return f&SceneFlagValidated != 0 }
func (f SceneFlags) ValidationWarning() bool { return f&SceneFlagValidationWarning != 0 }
func (f SceneFlags) NonVerboseFormat() bool  { return f&SceneFlagNonVerboseFormat != 0 }
func (f SceneFlags) Terrain() bool           { return f&SceneFlagTerrain != 0 }
func (f SceneFlags) AllowShared() bool       { return f&SceneFlagAllowShared != 0 }

// SceneStats summarizes an imported scene without copying its data.
type SceneStats struct {
	RootNode   string     `json:"root_node" yaml:"root_node"`
	Nodes      int        `json:"nodes" yaml:"nodes"`
	Meshes     int        `json:"meshes" yaml:"meshes"`
	Materials  int        `json:"materials" yaml:"materials"`
	Animations int        `json:"animations" yaml:"animations"`
	Textures   int        `json:"textures" yaml:"textures"`
	Lights     int        `json:"lights" yaml:"lights"`
	Cameras    int        `json:"cameras" yaml:"cameras"`
	Vertices   int        `json:"vertices" yaml:"vertices"`
	Faces      int        `json:"faces" yaml:"faces"`
	Flags      SceneFlags `json:"flags" yaml:"flags"`
}

// Scene owns an aiScene detached from the importer that produced it. The
// caller must call Release (or Close) once done; scenes that become
// unreachable first are released by the runtime.
type Scene struct {
	mu      sync.Mutex
	ptr     *C.struct_aiScene
	path    string
	flags   PostProcess
	cleanup runtime.Cleanup
}

func newScene(ptr *C.struct_aiScene, path string, flags PostProcess) *Scene {
	s := &Scene{ptr: ptr, path: path, flags: flags}
	s.cleanup = runtime.AddCleanup(s, releaseNativeScene, unsafe.Pointer(ptr))
	return s
}

func releaseNativeScene(ptr unsafe.Pointer) {
	C.assimp_shim_release_scene((*C.struct_aiScene)(ptr))
}

// Path returns the path the scene was imported from.
func (s *Scene) Path() string {
	return s.path
}

// Flags returns the post-process steps requested for the import.
func (s *Scene) Flags() PostProcess {
	return s.flags
}

// Pointer returns the underlying const aiScene* for use by other cgo code,
// or nil after Release. The pointer is only valid until Release, and the
// runtime may release an unreachable Scene on its own. Keep s reachable for
// as long as the pointer is used, with runtime.KeepAlive(s) after the last
// use or a deferred s.Release():
//
//	scene, err := assimp.ReadFileSync(path, 0, nil)
//	if err != nil {
//		return err
//	}
//	defer scene.Release()
//	useScene(scene.Pointer())
func (s *Scene) Pointer() unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return unsafe.Pointer(s.ptr)
}

// Released reports whether Release has been called.
func (s *Scene) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ptr == nil
}

// Release frees the native scene. Calling it more than once is a no-op.
func (s *Scene) Release() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ptr == nil {
		return
	}
	s.cleanup.Stop()
	C.assimp_shim_release_scene(s.ptr)
	s.ptr = nil
}

// Close implements io.Closer by releasing the scene.
func (s *Scene) Close() error {
	s.Release()
	return nil
}

// Stats walks the scene and returns its summary.
func (s *Scene) Stats() (SceneStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ptr == nil {
		return SceneStats{}, newReleasedError("scene has been released")
	}

	sc := s.ptr
	stats := SceneStats{
		Meshes:     int(sc.mNumMeshes),
		Materials:  int(sc.mNumMaterials),
		Animations: int(sc.mNumAnimations),
		Textures:   int(sc.mNumTextures),
		Lights:     int(sc.mNumLights),
		Cameras:    int(sc.mNumCameras),
		Flags:      SceneFlags(sc.mFlags),
	}

	if sc.mNumMeshes > 0 && sc.mMeshes != nil {
		for _, mesh := range unsafe.Slice(sc.mMeshes, int(sc.mNumMeshes)) {
			if mesh == nil {
				continue
			}
			stats.Vertices += int(mesh.mNumVertices)
			stats.Faces += int(mesh.mNumFaces)
		}
	}

	if sc.mRootNode != nil {
		stats.RootNode = goAIString(&sc.mRootNode.mName)
		stats.Nodes = countNodes(sc.mRootNode)
	}
	return stats, nil
}

func countNodes(node *C.struct_aiNode) int {
	if node == nil {
		return 0
	}
	total := 1
	if node.mNumChildren == 0 || node.mChildren == nil {
		return total
	}
	for _, child := range unsafe.Slice(node.mChildren, int(node.mNumChildren)) {
		total += countNodes(child)
	}
	return total
}

func goAIString(s *C.struct_aiString) string {
	if s == nil || s.length == 0 {
		return ""
	}
	return C.GoStringN(&s.data[0], C.int(s.length))
}
