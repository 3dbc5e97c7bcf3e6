// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/crossmesh/spoke-relayer/cli"
)

func main() {
	cli.Execute()
}
