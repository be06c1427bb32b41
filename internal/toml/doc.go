package toml

// Concurrency model.
//
// A serializer is single-threaded, synchronous, and non-suspending: a
// single emit call walks the value tree depth-first and never blocks.
// Its mutable state (key stack, indent counter, force-inline flag) is
// scoped to that one call. Concurrent calls using distinct serializer
// instances (which is exactly what Spec.Format/FormatKey/FormatPath
// construct on every call) are safe; sharing a live serializer across
// goroutines is not, and nothing in this package does so internally.
