// Package types defines the field schema, typed record, sleep cycle,
// and configuration types for the daylog extraction pipeline, along
// with the standard errors surfaced to callers.
package types
