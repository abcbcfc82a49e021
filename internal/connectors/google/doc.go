// Package google provides shared infrastructure for Google API connectors.
//
// It contains:
//   - a static TokenSource for caller-supplied access tokens
//   - the Drive service factory
//   - mapping of Google API errors (401, 403, 404, 429) to readable messages
//
// # Usage
//
// The caller's bearer token is wrapped per request and layered over the
// instrumented upstream client:
//
//	svc, err := google.NewDriveService(ctx, baseClient, accessToken, endpoint)
package google
