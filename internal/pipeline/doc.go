// Package pipeline fans alignment jobs out to a bounded worker pool and
// hands results back in input order.
//
// Layering: pipeline may import engine and pairs, but never app, cli, or
// writers.
package pipeline
