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
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chikuzen/YV12To422/hwy"
	"github.com/chikuzen/YV12To422/hwy/contrib/chroma"
	"github.com/chikuzen/YV12To422/hwy/contrib/yuv"
)

// lanesEnv sets --lanes when the flag is absent.
const lanesEnv = "YV12TO422_LANES"

type config struct {
	width, height int
	itype         int
	cplace        int
	interlaced    bool
	b, c          float64
	yuy2          bool
	lanes         int
	hshift        bool
	frames        int
	workers       int
	verbose       bool
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "yv12to422 [input [output]]",
		Short: "Upsample YV12 chroma to 4:2:2 (YV16 or YUY2)",
		Long: `yv12to422 reads raw YV12 frames and doubles the vertical chroma
resolution with point, linear or cubic interpolation.

itype: 0 point, 1 linear, 2 cubic.
cplace: 0 MPEG-2, 1 MPEG-1, 2 DV-NTSC, 3 DV-PAL. The default is 2 for
interlaced input and 1 otherwise.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lanes") {
				if v := os.Getenv(lanesEnv); v != "" {
					n, err := strconv.Atoi(v)
					if err != nil {
						return fmt.Errorf("%s: %w", lanesEnv, err)
					}
					cfg.lanes = n
				}
			}
			in, out := "-", "-"
			if len(args) > 0 {
				in = args[0]
			}
			if len(args) > 1 {
				out = args[1]
			}
			return run(cmd, cfg, in, out)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.width, "width", 0, "luma width in pixels (required)")
	f.IntVar(&cfg.height, "height", 0, "luma height in pixels, a multiple of 4 (required)")
	f.IntVar(&cfg.itype, "itype", int(chroma.Linear), "interpolation: 0 point, 1 linear, 2 cubic")
	f.IntVar(&cfg.cplace, "cplace", -1, "chroma siting: 0 MPEG-2, 1 MPEG-1, 2 DV-NTSC, 3 DV-PAL")
	f.BoolVar(&cfg.interlaced, "interlaced", false, "resample each field separately")
	f.Float64Var(&cfg.b, "b", 0, "cubic filter parameter b")
	f.Float64Var(&cfg.c, "c", 0.75, "cubic filter parameter c")
	f.BoolVar(&cfg.yuy2, "yuy2", true, "write packed YUY2 instead of planar YV16")
	f.IntVar(&cfg.lanes, "lanes", 0, "lane width in bytes, 16 or 32 (0 picks the widest available)")
	f.BoolVar(&cfg.hshift, "hshift", false, "shift chroma a quarter sample to the right first")
	f.IntVar(&cfg.frames, "frames", 0, "stop after this many frames (0 converts until end of input)")
	f.IntVar(&cfg.workers, "workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "print the dispatch level and a frame count to stderr")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

// options maps the flags onto converter options.
func (cfg config) options() yuv.Options {
	o := yuv.DefaultOptions(cfg.interlaced)
	o.Interpolation = chroma.Interpolation(cfg.itype)
	if cfg.cplace >= 0 {
		o.Siting = chroma.Siting(cfg.cplace)
	}
	o.B, o.C = cfg.b, cfg.c
	o.YUY2 = cfg.yuy2
	o.HorizontalShift = cfg.hshift
	o.Lanes = chroma.LaneWidth(cfg.lanes)
	o.Workers = cfg.workers
	return o
}

func run(cmd *cobra.Command, cfg config, inPath, outPath string) (err error) {
	logw := cmd.ErrOrStderr()

	conv, err := yuv.NewConverter(cfg.width, cfg.height, cfg.options())
	if err != nil {
		return err
	}
	defer conv.Close()

	if cfg.verbose {
		fmt.Fprintf(logw, "dispatch: %v (%d-byte vectors)\n", hwy.CurrentLevel(), hwy.CurrentWidth())
		fmt.Fprintf(logw, "converter: %s\n", conv)
	}

	r, closeIn, err := openInput(cmd, inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	w, closeOut, err := openOutput(cmd, outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", outPath, cerr)
		}
	}()

	frames, err := convertStream(cmd.Context(), conv, r, w, cfg.frames)
	if cfg.verbose {
		fmt.Fprintf(logw, "converted %d frames\n", frames)
	}
	return err
}
