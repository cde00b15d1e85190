package ident

import (
	crand "crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Namespace is the fixed namespace under which GenerateFromString derives
// name-based identifiers. Changing it would change every identifier ever
// derived from a name, so it is frozen for the lifetime of the module.
var Namespace = MustParse("6b65796d-696e-4000-8000-000000000000")

// generators is a pool of pseudo-random streams, each seeded once from
// the system entropy source. Pooling keeps concurrent GenerateRandom
// calls off a shared generator without a lock around every draw.
var generators = sync.Pool{
	New: func() interface{} {
		var seed [8]byte
		if _, err := crand.Read(seed[:]); err != nil {
			panic("ident: system entropy unavailable: " + err.Error())
		}
		return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
	},
}

// sequence backs GenerateSequential. The first issued value is 1.
var sequence atomic.Uint32

// GenerateRandom returns a new version-4 identifier. The backing
// generator streams are seeded from the system entropy source; per-call
// output is pseudo-random, not cryptographically secure. Identifiers are
// unique within a process with overwhelming probability, but no
// uniqueness is guaranteed across process restarts.
func GenerateRandom() UUID {
	rng := generators.Get().(*rand.Rand)
	id := newRandom(rng)
	generators.Put(rng)
	return id
}

// GenerateSequential returns identifiers carrying a process-wide counter
// in the last four bytes: 00000000-0000-0000-0000-0000xxxxxxxx. Calls are
// safe from any goroutine and never return equal values within one
// process. The output is trivially predictable; use it for tests and
// debugging only, never where secrecy or cross-process uniqueness
// matters.
func GenerateSequential() UUID {
	n := sequence.Add(1)
	var id UUID
	binary.BigEndian.PutUint32(id[12:], n)
	return id
}

// GenerateFromSeed returns the identifier deterministically derived from
// seed: the same seed yields the bit-identical identifier on every call,
// run and platform.
func GenerateFromSeed(seed uint32) UUID {
	return newRandom(rand.New(rand.NewSource(int64(seed))))
}

// GenerateFromString derives a version-5 (SHA-1, name-based) identifier
// from seed under Namespace. The same string always yields the same
// identifier; distinct strings collide only with the negligible
// probability of the underlying hash.
func GenerateFromString(seed string) UUID {
	return UUID(uuid.NewSHA1(uuid.UUID(Namespace), []byte(seed)))
}

// GenerateFromStringHash reduces seed to a 32-bit FNV-1a hash and feeds
// it to GenerateFromSeed. It is cheaper than GenerateFromString but only
// as collision-resistant as a 32-bit hash; prefer GenerateFromString
// when the derivation must be strong.
func GenerateFromStringHash(seed string) UUID {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return GenerateFromSeed(h.Sum32())
}

func newRandom(r io.Reader) UUID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// *rand.Rand reads never fail
		panic("ident: " + err.Error())
	}
	return UUID(id)
}
