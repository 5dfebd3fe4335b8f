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

// Package filter defines the optional user-supplied record predicate
// applied on the submission path, before a record is ever enqueued.
package filter

import "dirpx.dev/fastlog/record"

// Filter decides whether a record should be dropped before it is enqueued.
// It returns true when the record should be dropped.
type Filter func(r *record.Record) bool

// None is the default filter: it never drops anything.
func None(*record.Record) bool { return false }
