// Package config defines the format-agnostic model of a rate-policy document,
// along with the Loader interface for reading one from a concrete format.
//
// The config.Document is the single source of truth for the constants the
// reimburse package prices with. Concrete implementations of the Loader, such
// as for HCL, are provided in separate packages.
package config
