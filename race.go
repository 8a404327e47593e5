// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package syncx

// RaceEnabled is true when the race detector is active.
// Stress tests use it to scale down iteration counts, since the detector
// slows every mutex and condition-variable handoff by an order of magnitude.
const RaceEnabled = true
