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
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	kflate "github.com/klauspost/compress/flate"
)

func init() {
	// Swap compress/flate's deflate implementation for klauspost/compress's,
	// which is faster and allocates less; archive/zip stays the container
	// format, only the codec underneath changes.
	zip.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return kflate.NewWriter(out, kflate.DefaultCompression)
	})
}

// ZipPacker containerizes an archived segment into a single-entry zip file
// using archive/zip with a klauspost/compress-backed deflate codec.
type ZipPacker struct{}

var _ Packer = ZipPacker{}

// Extension returns "zip".
func (ZipPacker) Extension() string { return "zip" }

// Pack writes sourcePath's bytes as the single entry of a ".zip" artifact
// next to it, then deletes sourcePath.
func (ZipPacker) Pack(ctx context.Context, sourcePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("fastlog: packer/zip: open %s: %w", sourcePath, err)
	}
	defer src.Close()

	dstPath := replaceExt(sourcePath, "zip")
	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("fastlog: packer/zip: create %s: %w", dstPath, err)
	}

	zw := zip.NewWriter(dst)
	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:   filepath.Base(sourcePath),
		Method: zip.Deflate,
	})
	if err != nil {
		_ = zw.Close()
		_ = dst.Close()
		return fmt.Errorf("fastlog: packer/zip: create entry: %w", err)
	}
	if _, err := io.Copy(entry, src); err != nil {
		_ = zw.Close()
		_ = dst.Close()
		return fmt.Errorf("fastlog: packer/zip: write entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = dst.Close()
		return fmt.Errorf("fastlog: packer/zip: finish: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("fastlog: packer/zip: close %s: %w", dstPath, err)
	}

	if err := os.Remove(sourcePath); err != nil {
		return fmt.Errorf("fastlog: packer/zip: remove source %s: %w", sourcePath, err)
	}
	return nil
}

// replaceExt swaps the ".log" suffix of path for "." + ext. If path does not
// end in ".log" the new extension is simply appended.
func replaceExt(path, ext string) string {
	base := strings.TrimSuffix(path, ".log")
	return base + "." + ext
}
