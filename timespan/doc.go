// Package timespan resolves partially specified timestamps into the
// maximal time interval they could represent.
//
// What:
//
//   - Disambiguate parses a date string against a strptime-style
//     format and returns inclusive (mint, maxt) epoch-second bounds.
//   - The format itself determines the precision: "2020" parsed with
//     "%Y" covers the whole of 2020; "2020-12" with "%Y-%m" covers
//     all of December.
//
// Why:
//
//   - Raster tiles frequently encode only a truncated date in their
//     filename (a year for an annual landcover mask, a month for a
//     composite). Indexing such a tile in a spatiotemporal index
//     requires the widest interval consistent with that precision.
//
// Conventions:
//
//   - All parsing and calendar arithmetic is UTC, so the returned
//     epoch bounds do not depend on the host time zone.
//   - Intervals are closed: maxt is the last representable microsecond
//     of the period, not the start of the next one.
//   - A format with no date tokens at all yields (0, MaxEpoch).
//
// Errors:
//
//   - ErrParse: the date string does not match the format.
package timespan
