// Copyright © 2026 The diagview authors

// Package docs embeds the diagview file format references for use by
// the CLI.
package docs

import _ "embed"

//go:embed format.md
var FixitFormat string

//go:embed input.md
var InputFormat string
