// Package optics provides composable accessors (prisms, affine and
// indexed traversals, isos) over an immutable JSON value tree, plus the
// codecs that let the same accessors run over JSON text and byte
// containers.
//
// The package keeps all public API in the root package; low-level
// helpers (string interning, UTF-16 transforms) live in internal/.
//
// # Basic Usage
//
// Reading and rewriting through a composed path:
//
//	doc, _ := optics.Decode(`{"user":{"name":"John","age":30}}`)
//	name := optics.ComposeTraversals(optics.AtKey("user"), optics.AtKey("name"))
//	v, ok := name.Preview(doc)          // String("John"), true
//	doc2 := name.Set(doc, optics.String("Jane"))
//
// Rewrites are persistent: doc is left untouched and doc2 shares the
// unchanged parts of the tree.
//
// Typed narrowing with prisms:
//
//	age := optics.ComposeTraversalPrism(optics.AtKey("age"), optics.AsInteger)
//	n, ok := age.Preview(doc)           // int64(30), true
//
// Working directly on encoded text:
//
//	out := optics.AtKeyIn(optics.Text, "age").Set(`{"age":30}`, optics.Int(31))
//
// # Miss Semantics
//
// A shape mismatch (wrong variant, absent key, out-of-range index) and a
// decode failure behave identically: Preview/Match report false and
// Set/Over return the input unchanged. No operation panics or returns an
// error for malformed or absent input.
//
// # Containers
//
// The container set is closed: Raw (the Value tree itself), Text (UTF-8
// string), Bytes (UTF-8 bytes), and UTF16 (UTF-16 bytes with BOM). Each
// registers one decode/encode pair; AsValue, Through, and the *In
// helpers bridge them into the Value-level optics.
//
// # Numbers
//
// Numbers are arbitrary-precision decimals, so decode followed by encode
// preserves the exact numeric text of every literal. AsDouble and
// AsIntegral narrow to machine types, failing the match (never wrapping)
// when a value does not fit.
package optics
