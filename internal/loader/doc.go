// Package loader reads timeline events from disk or from the built-in
// World War II dataset.
//
// A data source is a single file or a directory. Files are decoded by
// extension:
//
//	.json         JSON array of events
//	.jsonc        JSON with comments and trailing commas
//	.yaml, .yml   YAML sequence of events
//
// Every record must carry the five string fields year, title, description,
// imageURL and category. Anything else about the data is taken as given.
//
// Directory sources load every file whose name matches the include glob, in
// lexical file-name order, and concatenate the results.
//
// [Watcher] reports changes to a source so callers can reload it. Load
// failures are returned as *errors.LoadError and never leave partial data
// behind.
package loader
