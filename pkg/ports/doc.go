/*
Package ports defines the driven ports (interfaces) of the gamut engine.

These interfaces decouple the parser from external name sources, allowing the
keyword fallback to be backed by an in-memory table, a shared Redis palette,
or anything else the host application provides.
*/
package ports
