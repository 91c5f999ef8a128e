// Copyright © 2026 The diagview authors

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosString(t *testing.T) {
	p := Pos{File: 0, Name: "main.c", Line: 3, Col: 7, PhysLine: 3}
	assert.Equal(t, "main.c:3:7", p.String())
	assert.Equal(t, "<invalid>", Pos{File: NoFile}.String())
}

func TestSpan(t *testing.T) {
	assert.False(t, Span{}.IsValid())
	assert.False(t, CharSpan(NoLoc, 5).IsValid())

	s := CharSpan(3, 8)
	assert.True(t, s.IsValid())
	assert.False(t, s.Empty())
	assert.False(t, s.TokenRange)

	assert.True(t, TokenSpan(3, 8).TokenRange)

	p := PointSpan(4)
	assert.True(t, p.IsValid())
	assert.True(t, p.Empty())
}
