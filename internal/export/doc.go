// Package export writes analysis results to files and streams.
//
// Formats:
//
//   - [WriteJSON]: snake_case document for web clients
//   - [WriteCSV]: one row per sample
//   - [CurveSVG]: stress-strain chart with offset line and markers
//   - [WritePDF]: printable test report
package export
