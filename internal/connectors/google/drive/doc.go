// Package drive implements the file store used by the content extractor on
// top of the Google Drive v3 API.
package drive
