// Package server exposes the analysis over HTTP.
//
// Routes:
//
//	GET  /api/health          - liveness
//	POST /api/analyze         - multipart upload (file, area, length) → JSON result
//	POST /api/analyze/series  - JSON arrays → JSON result
//	POST /api/report          - multipart upload → PDF report
//
// Analysis failures are reported with distinct status codes: invalid
// parameters and unreadable input are 400, too few samples is 422.
package server
