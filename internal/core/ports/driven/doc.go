// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and connectors and adapters
// implement them.
//
// # Optional Interfaces
//
// Every upstream is optional. A nil port means the credential for that
// service is missing, and the matching capability degrades to an error
// payload instead of failing the request:
//
//   - NotesSource: Notes/wiki search (Notion)
//   - ChatSource: Chat message search (Slack)
//   - LLMService: Language model completion (Anthropic)
//
// # Required Interfaces
//
//   - FileStore: File export/download (Google Drive), token supplied per call
//   - PDFExtractor: Text extraction from PDF bytes
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
