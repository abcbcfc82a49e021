// Package file loads and writes proxy settings as TOML on the local
// filesystem, with environment overrides for credentials.
package file
