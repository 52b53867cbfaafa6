// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD); it is part of the ARMv8-A
	// base architecture. The cpu check is kept for consistency and to make
	// room for SVE detection later.
	if cpu.ARM64.HasASIMD {
		nativeWidths[W64] = true
		nativeWidths[W128] = true
	}

	// Future: SVE supports 256/512-bit vectors on some cores.
	// if cpu.ARM64.HasSVE { ... }
}
