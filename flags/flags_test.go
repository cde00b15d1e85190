package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ability uint32

const (
	abilityNone ability = 0
	abilityJump ability = 1 << iota
	abilityFly
	abilitySwim
)

func TestHas(t *testing.T) {
	v := With(abilityJump, abilitySwim)

	assert.True(t, Has(v, abilityJump))
	assert.True(t, Has(v, abilitySwim))
	assert.False(t, Has(v, abilityFly))
	assert.True(t, Has(v, abilityJump|abilitySwim))
	assert.False(t, Has(v, abilityJump|abilityFly))
	assert.True(t, Has(v, abilityNone))
}

func TestHasAllAndAny(t *testing.T) {
	v := With(abilityJump, abilityFly)

	assert.True(t, HasAll(v, abilityJump|abilityFly))
	assert.False(t, HasAll(v, abilityJump|abilitySwim))
	assert.True(t, HasAny(v, abilitySwim|abilityFly))
	assert.False(t, HasAny(v, abilitySwim))
	assert.False(t, HasAny(abilityNone, abilityJump))
}

func TestWithWithoutToggle(t *testing.T) {
	v := None[ability]()
	assert.Equal(t, abilityNone, v)

	v = With(v, abilityJump)
	v = With(v, abilityJump) // idempotent
	assert.Equal(t, abilityJump, v)

	v = Toggle(v, abilityJump|abilityFly)
	assert.Equal(t, abilityFly, v)

	v = Without(v, abilityFly)
	assert.Equal(t, abilityNone, v)

	v = Without(v, abilityFly) // removing an absent flag is a no-op
	assert.Equal(t, abilityNone, v)
}
