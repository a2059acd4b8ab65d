//go:build tools
// +build tools

package geotransform

import (
	_ "github.com/dmarkham/enumer"
)
