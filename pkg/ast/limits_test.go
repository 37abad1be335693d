package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitPresets(t *testing.T) {
	def := DefaultLimits()
	relaxed := RelaxedLimits()
	strict := StrictLimits()

	assert.Greater(t, relaxed.MaxDepth, def.MaxDepth)
	assert.Less(t, strict.MaxDepth, def.MaxDepth)
	assert.Less(t, strict.MaxChildren, def.MaxChildren)
	assert.Zero(t, relaxed.MaxNameLen, "relaxed limits leave names unbounded")
}

func TestNilLimitsAcceptEverything(t *testing.T) {
	var l *Limits
	assert.NoError(t, l.CheckDepth(1<<30))
	assert.NoError(t, l.CheckName(strings.Repeat("x", 1<<16)))
	assert.NoError(t, l.CheckChildren(NewElement("Root")))
	assert.NoError(t, l.CheckAttribute("a", make([]Cell, 1<<16)))
	assert.NoError(t, l.Validate(sampleTree()))
}

func TestCheckDepth(t *testing.T) {
	l := &Limits{MaxDepth: 2}
	assert.NoError(t, l.CheckDepth(2))

	err := l.CheckDepth(3)
	var limitErr *LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "MaxDepth", limitErr.Limit)
	assert.Equal(t, 3, limitErr.Current)
	assert.Equal(t, 2, limitErr.Maximum)
	assert.Contains(t, err.Error(), "MaxDepth is 3 (max 2)")
}

func TestCheckNameCountsCharacters(t *testing.T) {
	l := &Limits{MaxNameLen: 3}
	assert.NoError(t, l.CheckName("äöü"), "three characters, six bytes")

	err := l.CheckName("abcd")
	var limitErr *LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "abcd", limitErr.Name)
	assert.Contains(t, err.Error(), `"abcd"`)
}

func TestCheckChildrenAndAttribute(t *testing.T) {
	l := &Limits{MaxChildren: 1, MaxValues: 2}
	root := NewElement("Root")
	require.NoError(t, l.CheckChildren(root))
	root.AddAttribute("a", Value("1"))
	assert.Error(t, l.CheckChildren(root))

	assert.NoError(t, l.CheckAttribute("a", []Cell{Value("1"), Null()}))
	assert.Error(t, l.CheckAttribute("a", []Cell{Value("1"), Null(), Null()}))
}

func TestValidateTree(t *testing.T) {
	root := sampleTree()

	require.NoError(t, (&Limits{MaxDepth: 2, MaxChildren: 3, MaxValues: 2}).Validate(root))

	var limitErr *LimitError
	require.ErrorAs(t, (&Limits{MaxDepth: 1}).Validate(root), &limitErr)
	assert.Equal(t, "MaxDepth", limitErr.Limit)
	assert.Equal(t, "Video", limitErr.Name)

	require.ErrorAs(t, (&Limits{MaxValues: 1}).Validate(root), &limitErr)
	assert.Equal(t, "Resolution", limitErr.Name)
}
