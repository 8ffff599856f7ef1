// Package engine runs one alignment job against the core aligner. It never
// imports app, writers, cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the shape of Result; use pkg/api for
// the stable wire types.
package engine
