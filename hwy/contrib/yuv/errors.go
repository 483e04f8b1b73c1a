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

package yuv

import "errors"

var (
	ErrNotMod4Height        = errors.New("yuv: height must be mod 4")
	ErrOddWidth             = errors.New("yuv: width must be even")
	ErrInvalidInterpolation = errors.New("yuv: itype must be set to 0, 1, or 2")
	ErrInvalidSiting        = errors.New("yuv: cplace must be set to 0, 1, 2, or 3")
	ErrInvalidLaneWidth     = errors.New("yuv: lane width must be 16 or 32")
	ErrPlaneTooSmall        = errors.New("yuv: plane too small")
)
