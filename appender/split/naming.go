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

package split

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"dirpx.dev/fastlog/timestamp"
)

// activePath returns the path of the currently-written file: <dir>/<base>.log.
func activePath(dir, base string) string {
	return filepath.Join(dir, base+".log")
}

// archiveFileName builds the pre-pack archive name for a given timestamp
// token, optionally disambiguated by a non-zero collision count:
// <base>_<token>.log, or <base>_<token>_<n>.log on collision.
func archiveFileName(base, token string, collision int64) string {
	if collision <= 0 {
		return base + "_" + token + ".log"
	}
	return fmt.Sprintf("%s_%s_%d.log", base, token, collision)
}

// archivePath builds the full pre-pack archive path.
func archivePath(dir, base, token string, collision int64) string {
	return filepath.Join(dir, archiveFileName(base, token, collision))
}

// archiveToken returns the sortable timestamp token used to name a
// freshly rotated segment.
func archiveToken(t time.Time) string {
	return timestamp.Sortable(t)
}

// packedPath swaps a pre-pack archive's ".log" suffix for the packer's
// extension: <base>_<token>.log -> <base>_<token>.<ext>.
func packedPath(archive, ext string) string {
	return strings.TrimSuffix(archive, ".log") + "." + ext
}

// archivePrefix returns the filename prefix shared by every archived
// segment of base, used when scanning the directory during a retention
// sweep: "<base>_".
func archivePrefix(base string) string {
	return base + "_"
}
