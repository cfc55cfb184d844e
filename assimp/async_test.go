package assimp

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunAsyncReturnsResult(t *testing.T) {
	ctx := context.Background()
	value, err := runAsync(ctx, func() (int, error) {
		return 42, nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Fatalf("unexpected value: %d", value)
	}
}

func TestRunAsyncRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runAsync[int](ctx, func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 0, nil
	}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunAsyncDiscardsLateResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var discarded atomic.Int32
	done := make(chan struct{})
	_, err := runAsync(ctx, func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 7, nil
	}, func(v int) {
		discarded.Store(int32(v))
		close(done)
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("late result was never discarded")
	}
	if discarded.Load() != 7 {
		t.Fatalf("unexpected discarded value: %d", discarded.Load())
	}
}

func TestReadFileReturnsScene(t *testing.T) {
	scene, err := ReadFile(context.Background(), fixturePath(t, "triangle.obj"), Triangulate, nil)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	defer scene.Release()

	stats, err := scene.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Meshes != 1 {
		t.Fatalf("expected 1 mesh, got %d", stats.Meshes)
	}
}

func TestReadFileWithCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scene, err := ReadFile(ctx, fixturePath(t, "triangle.obj"), 0, nil)
	if err == nil {
		scene.Release()
		t.Fatalf("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %T: %v", err, err)
	}
}

func TestReadFileCallbackCancellation(t *testing.T) {
	_, err := ReadFile(context.Background(), fixturePath(t, "triangle.obj"), 0, func(float32) bool {
		return false
	})
	var canceled *CanceledError
	if !errors.As(err, &canceled) {
		t.Fatalf("expected CanceledError, got %T: %v", err, err)
	}
}

func TestReadFileMissingFile(t *testing.T) {
	_, err := ReadFile(context.Background(), missingPath(t, "async"), 0, nil)
	var rejected *ImportRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ImportRejectedError, got %T: %v", err, err)
	}
}
