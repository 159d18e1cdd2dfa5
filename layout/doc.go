// Package layout turns a page's positioned text runs into classified
// paragraphs.
//
// The pipeline has three stages:
//
//   - [NormalizeRuns] collapses whitespace, drops empty runs and sorts the
//     result into reading order by (top, left).
//   - [GroupBlocks] merges consecutive spans whose vertical gap to the
//     current block is within a tolerance.
//   - [Classifier] marks blocks as headings or body text using the page's
//     median font size, and tags every block with the current section.
//
// No stage relies on structural metadata from the source format; block
// boundaries and heading roles are inferred from geometry alone.
package layout
