// Package ident provides the 128-bit identifier type used across the
// module, with four generation strategies: random (version 4),
// sequential (debug/test only), seeded-deterministic and name-based
// deterministic (version 5). The canonical textual form is the lowercase
// hyphenated 8-4-4-4-12 layout and is the only representation intended
// to be persisted or transmitted.
package ident
