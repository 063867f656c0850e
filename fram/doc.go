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

Package fram drives an MB85RS4MT ferroelectric RAM chip over SPI.
FRAM is byte addressable, non volatile and has effectively unlimited
write endurance, which makes it the persistence target for a heap
runtime that snapshots live memory.

The chip speaks a small command protocol: a one byte opcode, for the
read and write commands a 3 byte big-endian address, then the data
bytes, all in one chip-select assertion. The driver issues these
frames over a blocking Bus and does nothing else: no wear levelling,
no corruption detection, no retries. Every call is a synchronous
transaction on the caller's thread, and concurrent calls against one
device require external serialisation.

The driver never masks interrupts and must not be called from inside a
critical section; a bus transfer is far too long to stall the machine
for.

*/
package fram
