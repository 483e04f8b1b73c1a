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

package hwy

// AlignedSize rounds up size to the next multiple of align.
// This is useful for allocating rows that will be processed in whole lane
// groups, e.g. AlignedSize(width, d.Width()).
func AlignedSize(size, align int) int {
	if align <= 0 {
		return size
	}
	return ((size + align - 1) / align) * align
}

// IsAligned returns true if size is a multiple of align.
func IsAligned(size, align int) bool {
	if align <= 0 {
		return true
	}
	return size%align == 0
}

// ProcessWithTail calls fullFn(offset) for each whole lane group of d
// covering size bytes and tailFn(offset, count) once for a partial group.
//
// Example:
//
//	hwy.ProcessWithTail(d, len(row),
//	    func(offset int) { hwy.Stream(hwy.Load[uint8](d, row[offset:]), out[offset:]) },
//	    func(offset, count int) { copy(out[offset:offset+count], row[offset:]) },
//	)
func ProcessWithTail(d Tag, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := d.Width()

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
