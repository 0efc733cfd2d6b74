package preload

// Package preload fills the image cache before the gallery is shown. Sets are
// processed strictly in order; inside a set every item is fetched and decoded
// on its own goroutine and the set is finished only when all items settle.
// Failed items leave no cache handle and are recorded as failed, never retried.
