// Package daylog holds project-wide metadata.
package daylog

// Version is the daylog release version.
const Version = "0.1.0"
