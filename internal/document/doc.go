// Package document turns markdown source files into publishable documents.
//
// A file may start with a YAML metadata block delimited by "---" lines that
// sets title, published, tags, slug, and space. The effective title is the
// metadata title, else the first level-1 heading, else the filename without
// its extension. Malformed metadata is reported as services.ErrParse.
package document
