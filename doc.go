// Jannis M. Hoffmann, 2. 11. 2020

/*
Package jsondom converts JSON text to a document tree and back.
In contrast to encoding/json the package is centered around the tree model:
nodes are created standalone or directly inside an object or array, can be
inspected and rearranged, and are rendered back to compact JSON without going
through Go structs.

Object entries are kept in key order, not insertion order, and keys are
unique; inserting under a taken key destroys the previous value. Numbers are
held as github.com/shopspring/decimal values.

The parser accepts two deviations from strict JSON: object names may be bare
identifiers, and input following the first element is left unread rather than
rejected. The serializer writes string payloads verbatim without re-escaping,
so strings containing quotes, backslashes or control characters do not
round-trip.
*/
package jsondom // import "github.com/d1ced/jsondom"
