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

Package irq provides the critical section primitive used to serialise
access to shared memory on targets without hardware atomic instructions.

A critical section is entered by masking all interrupts and exited by
restoring the mask to its prior state via an opaque token, so sections
nest correctly. The whole machine is stalled while a section is held;
callers must keep sections to a handful of memory accesses and must never
block, sleep or perform I/O inside one.

This model is only correct for a single hardware core. It is not a
general multi-core synchronisation mechanism.

*/
package irq
