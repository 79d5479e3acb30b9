// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - TextWriter: human-readable terminal report with frequency tables
//     and a bar chart
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a pie chart
//   - JSONWriter: structured JSON for tool integration
//   - FrequencyWriter: the flat line-oriented word/count file format,
//     with SaveFile/LoadFile helpers for persistence and comparison
//
// Writers implement the Writer interface, so they can be used
// interchangeably and composed with MultiWriter for multi-destination
// output.
package report
