// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo resolves the build target's native byte order.
//
// Ports with a known order are handled at compile time via build tags; the
// remaining ports probe memory layout once at init.
package bo
