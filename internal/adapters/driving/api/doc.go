// Package api provides the HTTP driving adapter.
//
// A single endpoint, /search (alias /api/search), dispatches on query
// parameters to the search, content and answer services:
//
//	action=answer                           answer generator (body or query JSON)
//	action=getDriveContent&fileId&accessToken  drive content extractor
//	source=notion|slack&query               source search
//
// Handled failures are returned as 200 with an "error" field. Bad input is
// 400 and anything unexpected is 500, always as {"error": message}.
package api
