// Package tenant holds the read-only configuration records the core consumes
// from the tenant administration collaborator: freight strategy selection and
// pricing parameters, approval thresholds, postal-code direction ranges and
// vehicle/category records.
//
// The core never writes these records; they are plain data carriers rather
// than guarded aggregates.
package tenant
