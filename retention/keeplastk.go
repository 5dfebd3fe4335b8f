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

// KeepLastK keeps the K most recent archives (by the timestamp embedded in
// their name) and selects the rest for deletion.
type KeepLastK struct {
	K int
}

var _ Policy = KeepLastK{}

// SelectForDeletion returns every archive beyond the K newest.
func (p KeepLastK) SelectForDeletion(archives []Archive) []Archive {
	if p.K <= 0 {
		return sortedByAge(archives)
	}
	ordered := sortedByAge(archives)
	if len(ordered) <= p.K {
		return nil
	}
	return ordered[:len(ordered)-p.K]
}
