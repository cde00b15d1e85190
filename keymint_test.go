package keymint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type physicsContext struct {
	deltaTime float64
}

func TestAs(t *testing.T) {
	var payload interface{} = &physicsContext{deltaTime: 0.016}

	ctx, ok := As[*physicsContext](payload)
	assert.True(t, ok)
	assert.Equal(t, 0.016, ctx.deltaTime)

	_, ok = As[*testing.T](payload)
	assert.False(t, ok)

	_, ok = As[*physicsContext](nil)
	assert.False(t, ok)
}

func TestMustAs(t *testing.T) {
	var payload interface{} = &physicsContext{deltaTime: 0.016}

	ctx := MustAs[*physicsContext](payload)
	assert.Equal(t, 0.016, ctx.deltaTime)

	assert.Panics(t, func() {
		MustAs[*testing.T](payload)
	})
}
