// Package charts detects vector charts on a page.
//
// Charts in factsheet-style documents are line or bar drawings with axis
// labels set as ordinary text next to them. A [Detector] keeps drawing
// rectangles that are large enough and sit below the running header,
// associates the text blocks touching each rectangle (or a small margin
// around it), discards page-furniture text such as "MONTHLY FACTSHEET",
// and emits a chart for every rectangle with at least one associated block.
//
// [ExtractPairs] scans the associated text for fiscal-year labels followed
// by numbers ("FY22 120 FY23 150") and returns them as data points. Finding
// no pairs does not prevent a chart from being emitted.
package charts
