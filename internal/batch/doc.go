package batch

// Package batch converts many files through a convert.Converter with a
// bounded number of parallel requests. It manages the task lifecycle and
// reports every status change through an update callback.
