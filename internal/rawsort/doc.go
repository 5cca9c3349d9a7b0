// Package rawsort provides ordering algorithms over raw element memory.
//
// Every function takes a base address and an int64 element count, so ranges
// are not limited to the platform int. Elements are addressed as
// base + i*sizeof(T); callers guarantee the range is valid.
//
// # Algorithm
//
// Sort is an introsort variant that combines:
//   - Insertion sort for small subarrays
//   - Median-of-three quicksort partitioning for larger ranges
//   - Heapsort fallback to guarantee O(n log n) worst case
//
// Sort is not stable.
package rawsort
