//go:build tools
// +build tools

package tasten

// Build-time tool dependencies, pinned through the module file.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
