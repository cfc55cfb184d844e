// Package assimp imports 3D asset files through the native Assimp library.
//
// The binding is deliberately small. It hands a file path and a post-process
// bitmask to a fresh Assimp::Importer, reports progress back to a Go closure,
// and returns the parsed scene as an owned handle. Parsing, scene
// construction and every format-specific detail stay inside Assimp.
//
// # Installation
//
// The package compiles a small C++ shim with cgo and links against libassimp
// found through pkg-config:
//
//	# macOS
//	brew install assimp
//
//	# Debian/Ubuntu
//	apt-get install libassimp-dev
//
// Build with the assimp_static tag to skip pkg-config and link -lassimp
// directly.
//
// # Quick Start
//
//	scene, err := assimp.ReadFileSync("model.obj", assimp.TargetRealtimeQuality, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer scene.Release()
//
//	stats, err := scene.Stats()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d meshes, %d vertices\n", stats.Meshes, stats.Vertices)
//
// # Progress and Cancellation
//
// A ProgressFunc is called on the importing goroutine with a fraction in
// [0,1]. Returning false asks the import to stop:
//
//	scene, err := assimp.ReadFileSync(path, 0, func(p float32) bool {
//		fmt.Printf("\r%3.0f%%", p*100)
//		return !stopRequested()
//	})
//
// Assimp only checks the answer at a few points, and several importers ignore
// it entirely. Once the callback has returned false the binding treats the
// import as canceled regardless: ReadFileSync returns a *CanceledError and
// frees any scene the library still produced. Cancellation is cooperative;
// there is no forced abort or timeout inside the library.
//
// ReadFile adds context support on top of the same mechanism:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	scene, err := assimp.ReadFile(ctx, path, assimp.Triangulate, nil)
//
// # Error Handling
//
// Every failure is returned as an error; nothing is left in global state.
// Errors can be matched with errors.As:
//
//	var rejected *assimp.ImportRejectedError
//	var fault *assimp.UnexpectedFaultError
//	switch {
//	case errors.As(err, &rejected):
//		// Assimp declined the file: missing, unsupported or corrupt.
//	case errors.As(err, &fault):
//		// An exception escaped the importer.
//	}
//
// # Scene Ownership
//
// A successful import transfers ownership of the scene to the caller. Call
// Release (or Close) when finished. Scene.Pointer exposes the raw
// const aiScene* for code that walks the scene through its own cgo bindings;
// it must not be used after Release.
//
// # Concurrency
//
// Imports are synchronous and independent: each call builds its own importer,
// so any number of goroutines may import at once. Progress callbacks run on
// the goroutine that called ReadFileSync. SetLogger changes process-wide
// state and waits for imports already inside the library to return.
package assimp
