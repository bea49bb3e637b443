// Package mmap provides read-only memory-mapped file access.
//
// Local datasets are mapped instead of read so that parsing walks the page
// cache directly.
//
// # Usage
//
//	m, err := mmap.Open("points.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // valid until Close
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with a sequential-access madvise(2) hint
//   - Windows: CreateFileMapping/MapViewOfFile
package mmap
