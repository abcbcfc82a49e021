// Package connectors holds the upstream source adapters. Each subpackage
// owns the network calls for one service and implements a driven port:
//
//	notion       -> driven.NotesSource
//	slack        -> driven.ChatSource
//	google/drive -> driven.FileStore
package connectors
