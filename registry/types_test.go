package registry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/x"
)

type renderable interface {
	Kind() string
}

type sprite struct {
	Layer int
}

func (s *sprite) Kind() string { return "sprite" }

type mesh struct {
	Vertices int
}

func (m *mesh) Kind() string { return "mesh" }

type unrelated struct{}

func TestEmplaceType(t *testing.T) {
	types := NewTypes()
	types.Register(x.NewType(reflect.TypeOf(sprite{}), x.WithName("Sprite")))
	types.Register(x.NewType(reflect.TypeOf(mesh{}), x.WithName("Mesh")))

	reg := New[renderable]()

	item, id, err := EmplaceType(reg, types, "hero", "Sprite")
	assert.NoError(t, err)
	assert.True(t, id.IsValid())
	assert.Equal(t, "sprite", item.Kind())

	concrete, ok := item.(*sprite)
	assert.True(t, ok)
	concrete.Layer = 3

	// the registry borrowed out the same item it stores
	stored, ok := reg.Lookup("hero")
	assert.True(t, ok)
	assert.Equal(t, 3, stored.(*sprite).Layer)

	_, _, err = EmplaceType(reg, types, "terrain", "Mesh")
	assert.NoError(t, err)
	assert.Equal(t, 2, reg.Size())
}

func TestEmplaceTypeUnknown(t *testing.T) {
	types := NewTypes()
	reg := New[renderable]()

	_, _, err := EmplaceType(reg, types, "hero", "Sprite")
	assert.Error(t, err)
	assert.True(t, reg.IsEmpty())
}

func TestEmplaceTypeMismatch(t *testing.T) {
	types := NewTypes()
	types.Register(x.NewType(reflect.TypeOf(unrelated{}), x.WithName("Unrelated")))
	reg := New[renderable]()

	_, _, err := EmplaceType(reg, types, "hero", "Unrelated")
	assert.Error(t, err)
	assert.True(t, reg.IsEmpty())
}

func TestEmplaceTypeDuplicateName(t *testing.T) {
	types := NewTypes()
	types.Register(x.NewType(reflect.TypeOf(sprite{}), x.WithName("Sprite")))
	reg := New[renderable]()

	_, _, err := EmplaceType(reg, types, "hero", "Sprite")
	assert.NoError(t, err)
	_, _, err = EmplaceType(reg, types, "hero", "Sprite")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, reg.Size())
}
