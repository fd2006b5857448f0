/*
Package domain defines the core value types of the gamut engine: color space
descriptors, white points, parsed CSS function calls, lifecycle hooks, and the
sentinel errors shared by all packages.

Space descriptors are plain data. They are handed to the registry once, at
startup or plugin-load time, and the registry resolves inheritance and
connection-space wiring into a flat, immutable record. Nothing in this package
performs conversions; see internal/runtime for the engine itself.
*/
package domain
