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

package fram

import "errors"

var (
	// ErrNotReady indicates the bus device was not ready when the
	// driver was opened. A handle is not usable after this.
	ErrNotReady = errors.New("bus not ready")
	// ErrIO indicates a failed bus transaction, or an identity
	// mismatch during validation. Transfers are all or nothing; there
	// is no partial success.
	ErrIO = errors.New("i/o error")
)
