package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the file picker, format selector and Convert button to the
// conversion form and renders the returned image, the loading indicator and
// failures. All UI strings are localized via Localization.
