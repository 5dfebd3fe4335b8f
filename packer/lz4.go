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

package packer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// LZ4Packer streams an archived segment through an LZ4 frame. Unlike
// ZipPacker this produces a raw compressed stream, not a container: there is
// exactly one logical entry, the stream itself.
type LZ4Packer struct{}

var _ Packer = LZ4Packer{}

// Extension returns "lz4".
func (LZ4Packer) Extension() string { return "lz4" }

// Pack streams sourcePath through an LZ4 encoder into a ".lz4" artifact next
// to it, then deletes sourcePath.
func (LZ4Packer) Pack(ctx context.Context, sourcePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("fastlog: packer/lz4: open %s: %w", sourcePath, err)
	}
	defer src.Close()

	dstPath := replaceExt(sourcePath, "lz4")
	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("fastlog: packer/lz4: create %s: %w", dstPath, err)
	}

	zw := lz4.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		_ = zw.Close()
		_ = dst.Close()
		return fmt.Errorf("fastlog: packer/lz4: write: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = dst.Close()
		return fmt.Errorf("fastlog: packer/lz4: finish: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("fastlog: packer/lz4: close %s: %w", dstPath, err)
	}

	if err := os.Remove(sourcePath); err != nil {
		return fmt.Errorf("fastlog: packer/lz4: remove source %s: %w", sourcePath, err)
	}
	return nil
}
