package form

// Package form holds the image conversion form's state: the selected file,
// the chosen output format, the in-flight flag and the latest converted
// result. It is UI-toolkit agnostic; the ui package renders View snapshots
// and forwards user events here.
