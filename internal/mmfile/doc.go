// Package mmfile loads input files, memory-mapping them where the platform
// allows.
package mmfile
