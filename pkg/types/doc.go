// Package types defines the Record entity, its Kind tag, the Store interface,
// configuration, and the standard errors shared by the shelter packages.
package types
