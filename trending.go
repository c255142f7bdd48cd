// Package trending provides a CLI tool that extracts GitHub trending
// repository records from dated markdown digest files and loads them into a
// local SQLite database with upsert semantics.
//
// This package contains domain types, pure parsing functions, and service
// interfaces following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g., sqlite/,
// fs/, slog/).
package trending
