// Package yamlite parses and serializes a small, indentation-sensitive
// subset of YAML.
//
// The supported surface is mappings with string keys, block and flow
// sequences, flow mappings, quoted and plain strings, numbers, booleans,
// null, and comments. Anchors, aliases, tags, block scalars, multiple
// documents and directives are out of scope; the characters reserved for
// those features carry no special meaning here and scan as ordinary text.
//
// Parsing produces a dynamically-typed *Value tree:
//
//	v, err := yamlite.ParseString("name: app\nport: 8080\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	port, _ := v.Get("port")
//	n, _ := port.AsInt()
//
// Values are mutable. Entry and Element vivify missing structure, so a
// configuration can be built up from a null root:
//
//	root := yamlite.NewNull()
//	e, _ := root.Entry("debug")
//	e.SetBool(true)
//	out := root.Serialize()
//
// Serialize emits a canonical form: sorted mapping keys, two-space
// indentation, and quoting only where a plain scalar would read back as a
// different value. The output of Serialize always parses back to an equal
// tree.
package yamlite
