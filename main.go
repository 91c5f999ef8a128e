// Copyright © 2026 The diagview authors

package main

import "github.com/diagview/diagview/cmd"

func main() {
	cmd.Execute()
}
