// Package allocator owns the resource registry and implements the unit
// allocation protocol: attach, block, release and the promotion of blocked
// requests once enough units become available.
package allocator
