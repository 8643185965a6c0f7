// Package ingest turns uploaded test files into aligned numeric series.
//
// It owns everything the analysis must not depend on: file formats, header
// naming conventions and dirty cells.
//
//   - [ReadCSV], [ReadXLSX], [ReadFile]: raw [Table] from a file
//   - [Resolver]: header matching by substring (schema resolution)
//   - [Extract]: numeric coercion, dropping bad cells, positional alignment
//   - [Load], [Parse]: all of the above in one call
package ingest
