// Package jsonfile implements the store interfaces on top of JSON
// collection files. Each collection persists as a single file holding a
// flat list of records; every mutation rewrites the whole file inside a
// per-collection critical section.
package jsonfile
