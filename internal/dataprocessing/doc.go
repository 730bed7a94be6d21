// Package dataprocessing loads raw layoff feeds into the in-memory working
// set consumed by the cleaning pipeline. It accepts CSV and XLSX feeds,
// validates the column contract up front, and coerces loosely typed numeric
// text without ever failing the batch on a single bad value.
package dataprocessing
