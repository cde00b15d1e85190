// Package keymint is the identity and registry foundation for entity
// systems. It provides:
//
//   - ident    – a 128-bit identifier type with random, sequential,
//     seeded-deterministic and name-derived generation
//   - registry – an in-memory dual-key store addressing owned items by
//     name or identifier, with atomic insertion
//   - flags    – bitwise helpers for flag-style enumerated types
//   - paths    – process-scoped directory resolution
//
// keymint is designed to be embedded in host applications:
//
//	profiles := registry.New[*Profile]()
//	id, err := profiles.Add("Player", newProfile())
//	if profile, ok := profiles.Lookup("Player"); ok {
//		// use profile
//	}
//
// The root package carries only small helpers shared by hosts, such as
// the generic payload cast used in engine callbacks.
package keymint
