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

package block

import (
	"github.com/rosettascript/ruc/internal/api"
)

// State is the mutable working state for a single block.  Each block owns
// its State exclusively: it is built fresh from the static key material,
// mutated by the rounds and the ciphertext feedback, and discarded once the
// block's ciphertext is produced.  Block separation comes from the selector
// ordering and the block index folded into keystream derivation, never from
// state carried between blocks.
type State struct {
	Registers [api.RegisterCount]Register

	// Accumulator is reset to zero per block and never written by the
	// round function in the current design, yet is folded verbatim into
	// keystream derivation.  Wire-compatibility requires keeping it.
	Accumulator [api.AccumulatorSize]byte

	// AccumulatorSum tracks the wrapping sum of per-selector round
	// results.  Diagnostic only; it never feeds keystream derivation.
	AccumulatorSum uint64
}

// NewState builds a fresh State from the flattened key material.  Registers
// whose 64-byte chunk extends past the end of the material are left zero.
func NewState(keyMaterial []byte) *State {
	var s State
	for i := 0; i < api.RegisterCount; i++ {
		off := i * api.RegisterSize
		if off+api.RegisterSize <= len(keyMaterial) {
			copy(s.Registers[i][:], keyMaterial[off:off+api.RegisterSize])
		}
	}
	return &s
}
