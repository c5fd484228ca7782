// Copyright (c) 2026 RosettaScript Developers
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN
// ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package serial provides the sequential batch processor.  It is the
// reference path: every other implementation must produce identical bytes.
package serial

import (
	"github.com/rosettascript/ruc/internal/api"
	"github.com/rosettascript/ruc/internal/block"
)

var Impl api.Impl = &serialImpl{}

type serialImpl struct{}

func (impl *serialImpl) Name() string {
	return "serial"
}

func (impl *serialImpl) Process(dst, src []byte, startBlock uint64, p *api.Params) {
	numBlocks := len(src) / api.BlockSize
	for i := 0; i < numBlocks; i++ {
		off := i * api.BlockSize
		block.Encrypt(dst[off:off+api.BlockSize], src[off:off+api.BlockSize], startBlock+uint64(i), p)
	}
}
