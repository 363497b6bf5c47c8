package platform

// Package platform contains OS/platform integration: output directories,
// saving converted images to disk and revealing them in the file manager.
