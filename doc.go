// Package fontreport generates reporting artifacts about the fonts shipped
// with each Android API level.
//
// # Overview
//
// Two independent batch pipelines live under cmd/:
//
//   - fontassets aggregates font and emoji metadata into emoji_summary.json,
//     emoji_detail.json and two bar charts (size_total.png, size_change.png).
//   - fontsizecsv reads the size and name table version string of a list of
//     font files and writes fontsize.csv.
//
// # Architecture
//
// The root package only holds the shared logger. The work is done by:
//   - internal/metadata: API level table, font/support CSV and emoji-test.txt loaders
//   - internal/report: group-by aggregation and JSON documents
//   - internal/chart: bar chart rendering on a gg.Context
//   - internal/fontinfo: name table lookups with pluggable parser backends
//   - internal/sizecsv: the CSV pipeline
//   - internal/config: YAML and environment configuration
//
// # Logging
//
// Nothing is logged unless [SetLogger] is called. Both commands enable
// logging to stderr with --verbose.
package fontreport
