// Package batch converts sequences of quantities that share one source unit.
//
// The conversion transform is computed once and applied to every element on a
// bounded pool of workers. Each worker owns a disjoint chunk of the output, so
// no synchronization beyond waiting for the pool is needed and the output order
// always matches the input order.
package batch
