// Package store persists habit records as flat files.
//
// One record per habit, in a single container directory, named by the
// decimal form of the habit id. The directory is created lazily on first
// write. Record layout, line-oriented:
//
//	<title>
//	<separator>
//	<description, possibly multiple lines>
//	<separator>
//	<start date as "Y-M-D", no zero padding>
//	<one result code per line; a single empty line when the series is empty>
//
// The separator is a fixed marker line. The first occurrence after line 0
// ends the title; the LAST occurrence in the file ends the description, so
// a description may itself contain separator-like lines without breaking
// the record. Decoding scans for first/last occurrence accordingly and
// never does a naive split.
//
// Every read goes back to disk and every save rewrites the whole record;
// there is no caching and no locking. Concurrent access from multiple
// processes is unsafe: a write racing a read can surface as a
// CorruptRecordError or a lost update. Known limitation, not solved here.
package store
