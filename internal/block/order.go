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
	"sort"

	"golang.org/x/crypto/chacha20"

	"github.com/rosettascript/ruc/internal/api"
)

// streamBytes generates n deterministic bytes from a 32-byte seed via the
// ChaCha20 keystream with a zero nonce and a block counter starting at 0.
// This matches the rand_chacha ChaCha20Rng construction for streams shorter
// than 2^38 bytes, which covers every priority stream by a wide margin.
func streamBytes(seed *[32]byte, n int) []byte {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		panic("block: chacha20 setup: " + err.Error())
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}

// OrderSelectors returns the per-block permutation of selectors, derived
// deterministically from (key, iv, block index).  The input is never
// modified, and the output is always a permutation of it.
func OrderSelectors(selectors []uint16, key, iv []byte, blockIndex uint64) []uint16 {
	seedData := make([]byte, 0, len(key)+len(iv)+8+len(api.DomainPriority))
	seedData = append(seedData, key...)
	seedData = append(seedData, iv...)
	seedData = binary.BigEndian.AppendUint64(seedData, blockIndex)
	seedData = append(seedData, api.DomainPriority...)

	var seed [32]byte
	copy(seed[:], api.XOF(seedData, 32))

	priorities := streamBytes(&seed, 4*len(selectors))
	return orderByPriority(selectors, priorities)
}

// orderByPriority sorts the selectors by their little-endian 32 bit
// priorities, ascending.  The sort is stable: selectors whose priorities
// collide keep their original relative order, which other implementations
// rely on for bit-exact ciphertext.
func orderByPriority(selectors []uint16, priorities []byte) []uint16 {
	indices := make([]int, len(selectors))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		pa := binary.LittleEndian.Uint32(priorities[4*indices[a]:])
		pb := binary.LittleEndian.Uint32(priorities[4*indices[b]:])
		return pa < pb
	})

	ordered := make([]uint16, len(selectors))
	for i, idx := range indices {
		ordered[i] = selectors[idx]
	}
	return ordered
}

// KeyConstants precomputes the per-selector constant bytes consumed by the
// round function, indexed by position in the ordered selector list.
func KeyConstants(ordered []uint16, key []byte) []byte {
	constants := make([]byte, len(ordered))
	seedData := make([]byte, 2+len(key))
	for i, sel := range ordered {
		binary.LittleEndian.PutUint16(seedData[:2], sel)
		copy(seedData[2:], key)
		constants[i] = api.XOF(seedData, 1)[0]
	}
	return constants
}
