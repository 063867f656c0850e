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

// The legacy synchronisation intrinsic names. Some toolchains forbid
// defining the reserved builtin symbols directly and require the
// implementation to live under another name with the builtin bound to
// it at link time; here both schemes are ordinary exported names over
// the one set of operation bodies, so a caller using either resolves
// to the same implementation.

// SyncFetchAndAdd is the legacy name for FetchAdd.
func SyncFetchAndAdd[T Word](mem *T, val T) T {
	return FetchAdd(mem, val, SeqCst)
}

// SyncFetchAndSub is the legacy name for FetchSub.
func SyncFetchAndSub[T Word](mem *T, val T) T {
	return FetchSub(mem, val, SeqCst)
}

// SyncFetchAndAnd is the legacy name for FetchAnd.
func SyncFetchAndAnd[T Word](mem *T, val T) T {
	return FetchAnd(mem, val, SeqCst)
}

// SyncFetchAndOr is the legacy name for FetchOr.
func SyncFetchAndOr[T Word](mem *T, val T) T {
	return FetchOr(mem, val, SeqCst)
}

// SyncFetchAndXor is the legacy name for FetchXor.
func SyncFetchAndXor[T Word](mem *T, val T) T {
	return FetchXor(mem, val, SeqCst)
}

// SyncBoolCompareAndSwap sets the word to newval if it currently
// equals oldval, reporting whether the swap happened.
func SyncBoolCompareAndSwap[T Word](mem *T, oldval, newval T) bool {
	expected := oldval
	return CompareExchange(mem, &expected, newval, false, SeqCst, SeqCst)
}

// SyncValCompareAndSwap sets the word to newval if it currently equals
// oldval, returning the value observed before the call in either case.
func SyncValCompareAndSwap[T Word](mem *T, oldval, newval T) T {
	expected := oldval
	CompareExchange(mem, &expected, newval, false, SeqCst, SeqCst)
	return expected
}

// SyncLockTestAndSet sets the word to val and returns the prior value.
func SyncLockTestAndSet[T Word](mem *T, val T) T {
	return Exchange(mem, val, SeqCst)
}

// SyncLockRelease clears the word.
func SyncLockRelease[T Word](mem *T) {
	Store(mem, 0, SeqCst)
}
