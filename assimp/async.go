package assimp

import "context"

type asyncResult[T any] struct {
	value T
	err   error
}

// runAsync runs fn in a goroutine and returns early once ctx is done. A value
// produced after the caller gave up is handed to discard.
func runAsync[T any](ctx context.Context, fn func() (T, error), discard func(T)) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}

	resultCh := make(chan asyncResult[T], 1)
	go func() {
		value, err := fn()
		resultCh <- asyncResult[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		if discard != nil {
			go func() {
				out := <-resultCh
				if out.err == nil {
					discard(out.value)
				}
			}()
		}
		return zero, ctx.Err()
	case out := <-resultCh:
		return out.value, out.err
	}
}

// ReadFile imports a file in a goroutine.
//
// Context cancellation reaches the importer through the progress callback, so
// the read is asked to stop at its next progress report. ReadFile itself
// returns ctx.Err() as soon as the context is done; a scene that still
// arrives afterwards is released.
func ReadFile(ctx context.Context, path string, flags PostProcess, progress ProgressFunc) (*Scene, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	watched := func(p float32) bool {
		if ctx.Err() != nil {
			return false
		}
		if progress != nil {
			return progress(p)
		}
		return true
	}

	return runAsync(ctx, func() (*Scene, error) {
		scene, err := ReadFileSync(path, flags, watched)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				if _, ok := err.(*CanceledError); ok {
					return nil, newCanceledError("import canceled", ctxErr)
				}
			}
			return nil, err
		}
		return scene, nil
	}, func(scene *Scene) {
		scene.Release()
	})
}
