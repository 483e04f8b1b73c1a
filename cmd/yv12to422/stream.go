// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chikuzen/YV12To422/hwy/contrib/yuv"
)

// pipelineDepth is the number of input frames in flight between the reader
// and the converter.
const pipelineDepth = 2

const bufferSize = 1 << 20

func isZstd(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// openInput opens path for reading, or stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	var (
		r       io.Reader
		closers []func()
	)
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		r = f
		closers = append(closers, func() { f.Close() })
	}
	r = bufio.NewReaderSize(r, bufferSize)
	if isZstd(path) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		r = dec
		closers = append(closers, dec.Close)
	}
	return r, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}

// openOutput opens path for writing, or stdout for "-". The returned close
// function flushes every layer.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	var (
		w       io.Writer
		closers []func() error
	)
	if path == "-" {
		w = cmd.OutOrStdout()
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closers = append(closers, f.Close)
	}
	if isZstd(path) {
		enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(runtime.NumCPU()))
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		w = enc
		closers = append(closers, enc.Close)
	}
	bw := bufio.NewWriterSize(w, bufferSize)
	closers = append(closers, bw.Flush)
	return bw, func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}, nil
}

// convertStream reads frames from r on one goroutine and converts them to w
// on another. maxFrames <= 0 converts until r is exhausted. It returns the
// number of frames written.
func convertStream(ctx context.Context, conv *yuv.Converter, r io.Reader, w io.Writer, maxFrames int) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	free := make(chan yuv.Frame, pipelineDepth)
	full := make(chan yuv.Frame, pipelineDepth)
	for range pipelineDepth {
		free <- conv.NewInput()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(full)
		for n := 0; maxFrames <= 0 || n < maxFrames; n++ {
			var f yuv.Frame
			select {
			case f = <-free:
			case <-ctx.Done():
				return ctx.Err()
			}
			if _, err := f.ReadFrom(r); err != nil {
				if err == io.EOF {
					return nil
				}
				return fmt.Errorf("reading frame %d: %w", n, err)
			}
			select {
			case full <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var frames int
	g.Go(func() error {
		for f := range full {
			if _, err := conv.Convert(f, w); err != nil {
				return fmt.Errorf("writing frame %d: %w", frames, err)
			}
			frames++
			free <- f
		}
		return nil
	})

	err := g.Wait()
	return frames, err
}
