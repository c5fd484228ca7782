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
	"encoding/binary"

	"github.com/rosettascript/ruc/internal/api"
)

// Register is one 512-bit state register.
type Register [api.RegisterSize]byte

// rotateLeft512 rotates the register, viewed as a single 512-bit value,
// left by n bits.
func rotateLeft512(reg *Register, n uint) Register {
	var result Register
	byteShift := int(n / 8)
	bitShift := n % 8

	for i := 0; i < api.RegisterSize; i++ {
		srcIdx := (i + byteShift) % api.RegisterSize
		nextIdx := (i + byteShift + 1) % api.RegisterSize

		low := reg[srcIdx] << bitShift
		var high byte
		if bitShift > 0 {
			high = reg[nextIdx] >> (8 - bitShift)
		}

		result[i] = low | high
	}
	return result
}

// xor512 XORs two registers byte-wise.
func xor512(a, b *Register) Register {
	var result Register
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result
}

// regUint64 reads the first 8 bytes of the register as a little-endian
// unsigned 64 bit integer.
func regUint64(reg *Register) uint64 {
	return binary.LittleEndian.Uint64(reg[:8])
}

// putRegUint64 writes v into the first 8 bytes of the register in
// little-endian order, leaving bytes 8..63 untouched.
func putRegUint64(reg *Register, v uint64) {
	binary.LittleEndian.PutUint64(reg[:8], v)
}
