//go:build (linux || darwin || windows) && (amd64 || arm64)

package recipe

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd
