// Copyright © 2026 The diagview authors

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTopics(t *testing.T) {
	assert.Contains(t, docTopics["format"], "fix-it:")
	assert.Contains(t, docTopics["input"], "diagnostics")
}
