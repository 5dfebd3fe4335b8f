/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package packer defines the contract a compressor implements to turn an
// archived log segment into a compressed artifact, plus three concrete,
// dependency-backed implementations (zip, lz4, null).
package packer

import "context"

// Packer compresses an archived segment into a named artifact. It is an
// interface rather than a closed set of variants because users commonly
// want to plug in their own compressor.
type Packer interface {
	// Extension returns the short tag used in archive naming, e.g. "zip".
	Extension() string

	// Pack produces a compressed artifact next to sourcePath (same
	// directory, Extension() in place of the ".log" suffix) and deletes
	// sourcePath on success. On failure it returns an error and must leave
	// sourcePath untouched.
	Pack(ctx context.Context, sourcePath string) error
}
