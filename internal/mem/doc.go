// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides Go-heap byte buffers whose first byte sits on a caller-chosen
// power-of-two boundary. The returned slice keeps the over-allocated backing
// array alive.
package mem
