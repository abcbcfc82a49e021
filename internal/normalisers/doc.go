// Package normalisers turns binary file formats into plain text.
// Only PDF is handled here; Google formats are exported as text upstream.
package normalisers
