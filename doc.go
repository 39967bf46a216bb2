// Package ndjson renders newline delimited JSON for terminals.
//
// Each input line is parsed as a single JSON document. Lines holding a
// non-empty object render as a flat "key: value key2: value2" sequence
// without the top-level braces; lines holding a non-empty array render with
// brackets. Anything else - empty objects, empty arrays, bare scalars, or
// lines that are not JSON at all - passes through byte for byte. Colour
// escape codes are coalesced so consecutive tokens of the same class share
// one sequence.
//
// Basic usage:
//
//	if err := ndjson.ColorizeStream(os.Stdout, os.Stdin, nil); err != nil {
//		log.Fatal(err)
//	}
//
// Without colour:
//
//	opts := &ndjson.Options{NoColor: true}
//	if err := ndjson.ColorizeStream(os.Stdout, os.Stdin, opts); err != nil {
//		log.Fatal(err)
//	}
package ndjson
