package assimp

import (
	"context"
	"testing"
)

func BenchmarkReadFileSync(b *testing.B) {
	path := fixturePath(b, "quad.obj")
	b.ReportAllocs()
	for b.Loop() {
		scene, err := ReadFileSync(path, Triangulate, nil)
		if err != nil {
			b.Fatalf("ReadFileSync failed: %v", err)
		}
		scene.Release()
	}
}

func BenchmarkReadFileSyncWithProgress(b *testing.B) {
	path := fixturePath(b, "quad.obj")
	progress := func(float32) bool { return true }
	for b.Loop() {
		scene, err := ReadFileSync(path, Triangulate, progress)
		if err != nil {
			b.Fatalf("ReadFileSync failed: %v", err)
		}
		scene.Release()
	}
}

func BenchmarkReadFileParallel(b *testing.B) {
	path := fixturePath(b, "quad.obj")
	ctx := context.Background()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			scene, err := ReadFile(ctx, path, Triangulate, nil)
			if err != nil {
				b.Errorf("ReadFile failed: %v", err)
				return
			}
			scene.Release()
		}
	})
}
