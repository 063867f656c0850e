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

/*

Package atomics emulates the atomic operations a compiler expects from
the target, for cores that have no native atomic instructions.

Every operation on a 1, 2 or 4 byte word is carried out inside a
critical section (package irq): enter, touch the word, exit. Since the
single core is fully serialised by the interrupt mask, every operation
is effectively sequentially consistent and the requested memory order
is accepted but ignored. This is a deliberate simplification that is
only correct on a single hardware core; it is not an SMP memory model.

Two naming schemes are exposed over the same operation bodies: the
modern scheme (Load, Store, Exchange, CompareExchange, FetchAdd, ...)
and the legacy scheme (SyncFetchAndAdd, SyncBoolCompareAndSwap, ...)
matching the older synchronisation intrinsics.

The memory words operated on are owned by the caller; no operation
allocates or retains them.

*/
package atomics
