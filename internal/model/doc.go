package model

// Package model defines domain data structures used across the app: the
// selected source file, the closed set of output formats, and the submission
// phase enum. Structures are designed for direct binding in the UI and
// explicit state transitions.
