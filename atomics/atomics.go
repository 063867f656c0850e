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

package atomics

import "github.com/persistnv/nvprim/irq"

// Word is the set of memory word widths the emulation covers.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// Order is a requested memory ordering. All orderings behave as SeqCst
// here: the interrupt mask serialises the whole machine, so there is
// nothing weaker to provide.
type Order int32

const (
	Relaxed Order = iota
	Consume
	Acquire
	Release
	AcqRel
	SeqCst
)

// Load returns the value of the word.
func Load[T Word](mem *T, _ Order) T {
	key := irq.Lock()
	v := *mem
	irq.Unlock(key)
	return v
}

// Store sets the word to val.
func Store[T Word](mem *T, val T, _ Order) {
	key := irq.Lock()
	*mem = val
	irq.Unlock(key)
}

// Exchange sets the word to val and returns the prior value.
func Exchange[T Word](mem *T, val T, _ Order) T {
	key := irq.Lock()
	old := *mem
	*mem = val
	irq.Unlock(key)
	return old
}

// CompareExchange sets the word to desired if it currently equals
// *expected, reporting true. Otherwise the observed value is written
// back into *expected and it reports false. The weak flag is accepted
// for ABI compatibility and ignored: with no hardware contention there
// are no spurious failures, so the weak and strong forms are identical.
func CompareExchange[T Word](mem *T, expected *T, desired T, _ bool, _, _ Order) bool {
	ok := false
	key := irq.Lock()
	if *mem == *expected {
		*mem = desired
		ok = true
	} else {
		*expected = *mem
	}
	irq.Unlock(key)
	return ok
}

// FetchAdd adds val to the word and returns the prior value. The
// addition wraps modulo the word width, as unsigned arithmetic does.
func FetchAdd[T Word](mem *T, val T, _ Order) T {
	key := irq.Lock()
	old := *mem
	*mem = old + val
	irq.Unlock(key)
	return old
}

// FetchSub subtracts val from the word and returns the prior value.
func FetchSub[T Word](mem *T, val T, _ Order) T {
	key := irq.Lock()
	old := *mem
	*mem = old - val
	irq.Unlock(key)
	return old
}

// FetchAnd ands val into the word and returns the prior value.
func FetchAnd[T Word](mem *T, val T, _ Order) T {
	key := irq.Lock()
	old := *mem
	*mem = old & val
	irq.Unlock(key)
	return old
}

// FetchOr ors val into the word and returns the prior value.
func FetchOr[T Word](mem *T, val T, _ Order) T {
	key := irq.Lock()
	old := *mem
	*mem = old | val
	irq.Unlock(key)
	return old
}

// FetchXor xors val into the word and returns the prior value.
func FetchXor[T Word](mem *T, val T, _ Order) T {
	key := irq.Lock()
	old := *mem
	*mem = old ^ val
	irq.Unlock(key)
	return old
}
