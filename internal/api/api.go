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

// Package api provides the constants and interfaces shared by the batch
// processor implementations.
package api

import (
	"golang.org/x/crypto/sha3"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 32

	// Rounds is the number of mixing rounds applied per block.
	Rounds = 24

	// RegisterCount is the number of state registers.
	RegisterCount = 7

	// RegisterSize is the size of one state register in bytes (512 bits).
	RegisterSize = 64

	// AccumulatorSize is the size of the state accumulator in bytes.
	AccumulatorSize = 128

	// KeyMaterialSize is the size of the initial register material in bytes.
	KeyMaterialSize = RegisterCount * RegisterSize

	// SBoxSize is the size of a single round's substitution table.
	SBoxSize = 256

	// SBoxTableSize is the size of the flattened substitution tables
	// covering all rounds.
	SBoxTableSize = Rounds * SBoxSize

	// RoundKeySize is the size of a single round key in bytes.
	RoundKeySize = RegisterSize

	// RoundKeyTableSize is the size of the flattened round keys covering
	// all rounds.
	RoundKeyTableSize = Rounds * RoundKeySize
)

// Domain separation literals.  These are part of the wire-compatibility
// contract and must match other implementations byte-for-byte.
var (
	DomainPriority  = []byte("RUC-SELECTOR-PRIORITY-V1")
	DomainCtrIV     = []byte("RUC-CTR-IV-V1") // reserved, currently unexercised
	DomainKeystream = []byte("RUC-KEYSTREAM-V1")
)

// Params holds the per-batch inputs shared by every block.  All fields are
// treated as opaque, read-only buffers for the duration of a batch call.
type Params struct {
	Key         []byte
	IV          []byte
	KeyMaterial []byte
	Selectors   []uint16
	SBoxes      []byte
	RoundKeys   []byte
}

// Impl is a batch processor implementation.
type Impl interface {
	// Name returns the name of the implementation.
	Name() string

	// Process transforms the complete blocks of src into dst.  dst must
	// hold exactly (len(src)/BlockSize)*BlockSize bytes; trailing src
	// bytes beyond the last complete block are ignored.  Encryption and
	// decryption are the same transform.
	Process(dst, src []byte, startBlock uint64, p *Params)
}

// XOF returns outputLength bytes of SHAKE256 output over data.
func XOF(data []byte, outputLength int) []byte {
	h := sha3.NewShake256()
	_, _ = h.Write(data)
	out := make([]byte, outputLength)
	_, _ = h.Read(out)
	return out
}
