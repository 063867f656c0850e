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

import "sync"

// Hosted is a Masker for hosted targets and tests, where interrupts
// cannot be masked directly. A process-wide mutex stands in for the
// global interrupt mask, which preserves the property the callers rely
// on: at most one critical section runs at a time.
//
// Unlike a hardware mask, the mutex cannot be re-entered from the
// goroutine holding it, so sections do not nest on the hosted masker.
// The atomics library only ever enters a single level.
type Hosted struct {
	mu    sync.Mutex
	depth uint32
}

// NewHosted returns a hosted stand-in for the interrupt mask.
func NewHosted() *Hosted {
	return new(Hosted)
}

// Lock takes the section mutex and records the prior depth in the
// token, mirroring the key returned by a hardware interrupt lock.
func (h *Hosted) Lock() Token {
	h.mu.Lock()
	t := Token{key: h.depth}
	h.depth++
	return t
}

// Unlock restores the state captured by the token. Tokens must be
// consumed once each, innermost first; the hosted masker can detect a
// violation and panics, since it always indicates a caller bug.
func (h *Hosted) Unlock(t Token) {
	if h.depth == 0 || t.key != h.depth-1 {
		panic("irq: unbalanced critical section exit")
	}
	h.depth--
	h.mu.Unlock()
}
