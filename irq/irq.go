// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package irq

// Token captures the interrupt-enable state at the moment a critical
// section was entered. It is consumed exactly once by the matching
// Unlock; every Lock must be paired with an Unlock of its token,
// including on error paths.
type Token struct {
	key uint32
}

// Masker is the platform interrupt mask mechanism. Lock disables all
// interrupts and returns a token encoding the prior state; Unlock
// restores exactly that prior state. Implementations must return the
// true prior state rather than a fixed "enabled" state, so that
// sections may nest.
type Masker interface {
	Lock() Token
	Unlock(Token)
}

// The masker in effect for this process. There is one per target.
var masker Masker = NewHosted()

// Use installs the masker for the running target, replacing the
// default hosted implementation. It must be called before any
// critical section is entered, typically from an init function of the
// target support package.
func Use(m Masker) {
	masker = m
}

// Lock enters a critical section, masking all interrupts.
func Lock() Token {
	return masker.Lock()
}

// Unlock leaves a critical section, restoring the mask state captured
// by the token.
func Unlock(t Token) {
	masker.Unlock(t)
}
