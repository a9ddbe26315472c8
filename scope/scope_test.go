/*
File    : Tupa/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/Mathewsz/Tupa/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupWalksTowardGlobal(t *testing.T) {
	c := NewChain()
	c.Define("x", &values.Integer{Value: 1})
	c = c.Push()
	v, ok := c.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*values.Integer).Value)
}

func TestDefineInnerShadowsOuter(t *testing.T) {
	c := NewChain()
	c.Define("x", &values.Integer{Value: 1})
	c = c.Push()
	c.Define("x", &values.Integer{Value: 2})
	v, _ := c.Lookup("x")
	assert.Equal(t, int64(2), v.(*values.Integer).Value)

	c = c.Pop()
	v, _ = c.Lookup("x")
	assert.Equal(t, int64(1), v.(*values.Integer).Value, "outer binding must be unaffected by inner shadow")
}

func TestSetWritesCurrentScopeOnly(t *testing.T) {
	c := NewChain()
	c.Define("x", &values.Integer{Value: 1})
	c = c.Push()
	c.Set("x", &values.Integer{Value: 99})

	v, _ := c.Lookup("x")
	assert.Equal(t, int64(99), v.(*values.Integer).Value, "Set must shadow in the current scope")

	c = c.Pop()
	v, _ = c.Lookup("x")
	assert.Equal(t, int64(1), v.(*values.Integer).Value, "outer binding must be untouched by inner Set")
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	c := NewChain()
	_, ok := c.Lookup("nao_existe")
	assert.False(t, ok)
}

func TestCloneIsIndependentOfFuturePushPop(t *testing.T) {
	c := NewChain()
	c.Define("x", &values.Integer{Value: 1})
	snap := c.Clone()

	c = c.Push()
	c.Define("y", &values.Integer{Value: 2})

	_, ok := snap.Lookup("y")
	assert.False(t, ok, "snapshot must not see scopes pushed after it was taken")

	// but mutations to shared scopes remain visible through the snapshot
	c.Global().Define("x", &values.Integer{Value: 42})
	v, _ := snap.Lookup("x")
	assert.Equal(t, int64(42), v.(*values.Integer).Value)
}

func TestNewChainHasOnlyGlobalScope(t *testing.T) {
	c := NewChain()
	assert.Len(t, c, 1)
	assert.Equal(t, c.Top(), c.Global())
}
