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

package ruc

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosettascript/ruc/internal/api"
)

type batchInputs struct {
	key         []byte
	iv          []byte
	keyMaterial []byte
	selectors   []uint16
	sboxes      []byte
	roundKeys   []byte
}

func randomInputs(t *testing.T) *batchInputs {
	t.Helper()

	in := &batchInputs{
		key:         make([]byte, 32),
		iv:          make([]byte, 16),
		keyMaterial: make([]byte, KeyMaterialSize),
		selectors:   make([]uint16, 24),
		sboxes:      make([]byte, SBoxTableSize),
		roundKeys:   make([]byte, RoundKeyTableSize),
	}
	_, _ = rand.Read(in.key)
	_, _ = rand.Read(in.iv)
	_, _ = rand.Read(in.keyMaterial)
	_, _ = rand.Read(in.roundKeys)
	for i := range in.selectors {
		in.selectors[i] = uint16(i * 2749)
	}
	for r := 0; r < Rounds; r++ {
		for i := 0; i < 256; i++ {
			in.sboxes[r*256+i] = byte((i + r*41) & 0xFF) // a permutation per round
		}
	}
	return in
}

func TestBatchRoundTrip(t *testing.T) {
	require := require.New(t)

	in := randomInputs(t)

	for _, numBlocks := range []int{1, 2, 33} {
		plaintext := make([]byte, numBlocks*BlockSize)
		_, _ = rand.Read(plaintext)

		ciphertext := EncryptBatch(plaintext, in.key, in.iv, 3, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
		require.Len(ciphertext, len(plaintext))
		require.NotEqual(plaintext, ciphertext)

		recovered := DecryptBatch(ciphertext, in.key, in.iv, 3, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
		require.Equal(plaintext, recovered, "%d blocks", numBlocks)
	}
}

func TestBatchDeterminism(t *testing.T) {
	require := require.New(t)

	in := randomInputs(t)
	plaintext := make([]byte, 4*BlockSize)
	_, _ = rand.Read(plaintext)

	a := EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	b := EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.Equal(a, b)
}

func TestBatchTruncation(t *testing.T) {
	require := require.New(t)

	in := randomInputs(t)

	// 33 bytes: exactly one block out, the 33rd byte silently dropped.
	plaintext := make([]byte, 33)
	_, _ = rand.Read(plaintext)

	ciphertext := EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.Len(ciphertext, 32)
	require.Equal(
		EncryptBatch(plaintext[:32], in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys),
		ciphertext)

	// Short of one block: empty output, no error.
	require.Empty(EncryptBatch(plaintext[:31], in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys))
	require.Empty(EncryptBatch(nil, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys))
}

func TestBatchBlockIndexSensitivity(t *testing.T) {
	require := require.New(t)

	in := randomInputs(t)
	plaintext := make([]byte, BlockSize)

	at0 := EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	at1 := EncryptBatch(plaintext, in.key, in.iv, 1, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.NotEqual(at0, at1)

	// Batch position and start index compose: block n of a start-0 run is
	// block 0 of a start-n run.
	two := EncryptBatch(make([]byte, 2*BlockSize), in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.Equal(two[:BlockSize], at0)
	require.Equal(two[BlockSize:], at1)
}

func TestBatchPermissiveDegradation(t *testing.T) {
	require := require.New(t)

	in := randomInputs(t)
	plaintext := make([]byte, BlockSize)
	_, _ = rand.Read(plaintext)

	// Undersized tables produce output anyway; the affected rounds are
	// skipped.  With no valid rounds at all the keystream still flows
	// from the (unmixed) key material.
	ciphertext := EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes[:100], in.roundKeys[:10])
	require.Len(ciphertext, BlockSize)
	require.NotEqual(plaintext, ciphertext)

	recovered := DecryptBatch(ciphertext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes[:100], in.roundKeys[:10])
	require.Equal(plaintext, recovered)
}

func TestBatchStrict(t *testing.T) {
	require := require.New(t)

	in := randomInputs(t)
	plaintext := make([]byte, 2*BlockSize)
	_, _ = rand.Read(plaintext)

	ciphertext, err := EncryptBatchStrict(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.NoError(err)
	require.Equal(
		EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys),
		ciphertext, "strict path must match the permissive path on valid input")

	recovered, err := DecryptBatchStrict(ciphertext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.NoError(err)
	require.Equal(plaintext, recovered)

	_, err = EncryptBatchStrict(plaintext, in.key, in.iv, 0, in.keyMaterial[:KeyMaterialSize-1], in.selectors, in.sboxes, in.roundKeys)
	require.Equal(ErrInvalidKeyMaterialSize, err)

	_, err = EncryptBatchStrict(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes[:SBoxTableSize-1], in.roundKeys)
	require.Equal(ErrInvalidSBoxTableSize, err)

	_, err = DecryptBatchStrict(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys[:RoundKeyTableSize-1])
	require.Equal(ErrInvalidRoundKeyTableSize, err)
}

func TestImplSelection(t *testing.T) {
	require := require.New(t)

	require.Equal("serial", chooseImpl(1).Name())
	require.Equal("serial", chooseImpl(parallelThreshold).Name())

	in := randomInputs(t)
	plaintext := make([]byte, (parallelThreshold+8)*BlockSize)
	_, _ = rand.Read(plaintext)

	// Whatever implementation the block count selects, the bytes must
	// match the serial reference.
	p := &api.Params{
		Key:         in.key,
		IV:          in.iv,
		KeyMaterial: in.keyMaterial,
		Selectors:   in.selectors,
		SBoxes:      in.sboxes,
		RoundKeys:   in.roundKeys,
	}
	want := make([]byte, len(plaintext))
	serialImpl.Process(want, plaintext, 0, p)

	got := EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	require.Equal(want, got)
}

func TestHashXOF(t *testing.T) {
	require := require.New(t)

	for _, n := range []int{0, 1, 31, 32, 33, 200} {
		out := HashXOF([]byte("determinism"), n)
		require.Len(out, n)
		require.Equal(out, HashXOF([]byte("determinism"), n), "length %d", n)
	}

	// An XOF: longer outputs extend shorter ones.
	long := HashXOF([]byte("determinism"), 64)
	require.Equal(HashXOF([]byte("determinism"), 32), long[:32])
}

func benchmarkEncryptBatch(b *testing.B, numBlocks int) {
	in := &batchInputs{
		key:         make([]byte, 32),
		iv:          make([]byte, 16),
		keyMaterial: make([]byte, KeyMaterialSize),
		selectors:   make([]uint16, 16),
		sboxes:      make([]byte, SBoxTableSize),
		roundKeys:   make([]byte, RoundKeyTableSize),
	}
	_, _ = rand.Read(in.keyMaterial)
	_, _ = rand.Read(in.roundKeys)
	for i := range in.selectors {
		in.selectors[i] = uint16(i * 4099)
	}
	for i := range in.sboxes {
		in.sboxes[i] = byte(i)
	}

	plaintext := make([]byte, numBlocks*BlockSize)
	_, _ = rand.Read(plaintext)

	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncryptBatch(plaintext, in.key, in.iv, 0, in.keyMaterial, in.selectors, in.sboxes, in.roundKeys)
	}
}

func BenchmarkEncryptBatch(b *testing.B) {
	for _, numBlocks := range []int{1, 8, 64, 1024} {
		b.Run(fmt.Sprintf("%dBlocks", numBlocks), func(b *testing.B) {
			benchmarkEncryptBatch(b, numBlocks)
		})
	}
}
