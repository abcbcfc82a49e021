// Package driving defines the interfaces that external actors call INTO core.
//
// The HTTP router, the CLI and the MCP server all depend on these ports
// and never on concrete services.
package driving
