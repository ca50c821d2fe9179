// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Domain aggregates use kernel types instead
// of library types directly so that validation and construction rules live in
// one place.
package kernel
