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

package retention

// KeepBySize keeps the most recent archives whose aggregate size is within
// MaxBytes, deleting older ones once the budget is exceeded.
type KeepBySize struct {
	MaxBytes int64
}

var _ Policy = KeepBySize{}

// SelectForDeletion walks archives newest-first accumulating size; once the
// running total exceeds MaxBytes, that archive and every older one are
// selected for deletion.
func (p KeepBySize) SelectForDeletion(archives []Archive) []Archive {
	ordered := sortedByAge(archives)

	var total int64
	cut := len(ordered)
	for i := len(ordered) - 1; i >= 0; i-- {
		total += ordered[i].Size
		if total > p.MaxBytes {
			cut = i + 1
			break
		}
		cut = i
	}
	return ordered[:cut]
}
