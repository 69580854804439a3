// Package resources is the compiled-in resource bundle: binary assets and
// localized strings keyed by numeric IDs.
//
// Assets live under assets/ and are embedded at build time; large HTML
// documents are stored gzip-compressed and decompressed once at load.
// String tables are per-locale maps with per-string fallback to the base
// language and then en-US, so a partial translation never produces an
// empty page.
package resources
