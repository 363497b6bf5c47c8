package convert

// Package convert talks to the image conversion backend: it builds the
// multipart upload (file part plus a JSON-encoded output_type part), posts it
// and hands back the converted bytes tagged with their content type.
