// Package services implements the driving port interfaces.
// Services contain the core request logic and orchestrate
// calls to driven ports (connectors and adapters).
//
// Services never touch the network directly and hold no state
// between requests.
package services
