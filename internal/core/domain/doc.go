// Package domain defines the core value types for the CtrlF search proxy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: A notes/wiki search hit with optional linearised content
//   - Message: A chat search hit
//   - ExtractedContent: Text pulled out of a stored file
//   - AnswerResult: A language model answer over caller-supplied context
//   - Settings: Injected configuration and credentials
//
// Every value is produced fresh per request and discarded afterwards.
// The proxy never assigns or persists identifiers of its own.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
