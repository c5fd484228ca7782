// Package ruc implements the core of the Random Universe Cipher, a
// symmetric XOR stream cipher built from a 512-bit register state, GF(2^8)
// arithmetic, and a secret-derived per-block selector permutation.
//
// The package covers the deterministic transform only: table and key
// schedule generation from a master key, IV policy, and ciphertext
// transport live elsewhere and hand their outputs in as opaque buffers.
// No integrity tag is produced; callers needing authenticated encryption
// must compose one on top.
package ruc

import (
	"errors"
	"runtime"

	"github.com/rosettascript/ruc/internal/api"
	"github.com/rosettascript/ruc/internal/parallel"
	"github.com/rosettascript/ruc/internal/serial"
)

const (
	// BlockSize is the cipher block size in bytes.  Trailing input bytes
	// beyond the last complete block are silently dropped.
	BlockSize = api.BlockSize

	// Rounds is the number of mixing rounds applied per block.
	Rounds = api.Rounds

	// RegisterCount is the number of 512-bit state registers.
	RegisterCount = api.RegisterCount

	// RegisterSize is the size of one state register in bytes.
	RegisterSize = api.RegisterSize

	// AccumulatorSize is the size of the state accumulator in bytes.
	AccumulatorSize = api.AccumulatorSize

	// KeyMaterialSize is the required key material size for the strict
	// entry points (7 registers of 64 bytes).
	KeyMaterialSize = api.KeyMaterialSize

	// SBoxTableSize is the required flattened substitution table size for
	// the strict entry points (24 rounds of 256 bytes).
	SBoxTableSize = api.SBoxTableSize

	// RoundKeyTableSize is the required flattened round key size for the
	// strict entry points (24 rounds of 64 bytes).
	RoundKeyTableSize = api.RoundKeyTableSize
)

var (
	// ErrInvalidKeyMaterialSize is returned by the strict entry points
	// when the key material is not exactly KeyMaterialSize bytes.
	ErrInvalidKeyMaterialSize = errors.New("ruc: invalid key material size")

	// ErrInvalidSBoxTableSize is returned by the strict entry points when
	// the flattened substitution tables are not exactly SBoxTableSize
	// bytes.
	ErrInvalidSBoxTableSize = errors.New("ruc: invalid s-box table size")

	// ErrInvalidRoundKeyTableSize is returned by the strict entry points
	// when the flattened round keys are not exactly RoundKeyTableSize
	// bytes.
	ErrInvalidRoundKeyTableSize = errors.New("ruc: invalid round key table size")

	serialImpl   = serial.Impl
	parallelImpl = parallel.Impl

	// parallelThreshold is the block count above which the batch entry
	// points fan out across CPUs.  Below it the per-goroutine overhead
	// outweighs the win.
	parallelThreshold = 16
)

// HashXOF returns outputLength bytes of SHAKE256 output over data.  It is
// deterministic and pure, and is the extendable-output primitive every
// derivation in the cipher is built on.
func HashXOF(data []byte, outputLength int) []byte {
	return api.XOF(data, outputLength)
}

// EncryptBatch encrypts every complete 32-byte block of plaintext and
// returns the concatenated ciphertext.  Output length is always
// (len(plaintext)/BlockSize)*BlockSize; a trailing partial block is
// dropped without error.
//
// Undersized auxiliary buffers degrade permissively (affected rounds are
// skipped, missing register material reads as zero) for compatibility with
// existing ciphertext.  Callers that would rather fail loudly should use
// EncryptBatchStrict.
func EncryptBatch(plaintext, key, iv []byte, startBlock uint64, keyMaterial []byte, selectors []uint16, sboxes, roundKeys []byte) []byte {
	numBlocks := len(plaintext) / BlockSize
	dst := make([]byte, numBlocks*BlockSize)

	p := &api.Params{
		Key:         key,
		IV:          iv,
		KeyMaterial: keyMaterial,
		Selectors:   selectors,
		SBoxes:      sboxes,
		RoundKeys:   roundKeys,
	}
	chooseImpl(numBlocks).Process(dst, plaintext, startBlock, p)

	return dst
}

// DecryptBatch decrypts every complete 32-byte block of ciphertext.  The
// cipher is a pure XOR stream cipher, so this is the identical transform
// to EncryptBatch.
func DecryptBatch(ciphertext, key, iv []byte, startBlock uint64, keyMaterial []byte, selectors []uint16, sboxes, roundKeys []byte) []byte {
	return EncryptBatch(ciphertext, key, iv, startBlock, keyMaterial, selectors, sboxes, roundKeys)
}

// EncryptBatchStrict is EncryptBatch behind fail-fast validation of the
// fixed-size buffers.  It never reaches the permissive degradation paths:
// a wrong-sized buffer returns an error instead of plausible but wrong
// ciphertext.
func EncryptBatchStrict(plaintext, key, iv []byte, startBlock uint64, keyMaterial []byte, selectors []uint16, sboxes, roundKeys []byte) ([]byte, error) {
	if err := validateSizes(keyMaterial, sboxes, roundKeys); err != nil {
		return nil, err
	}
	return EncryptBatch(plaintext, key, iv, startBlock, keyMaterial, selectors, sboxes, roundKeys), nil
}

// DecryptBatchStrict is DecryptBatch behind the same validation as
// EncryptBatchStrict.
func DecryptBatchStrict(ciphertext, key, iv []byte, startBlock uint64, keyMaterial []byte, selectors []uint16, sboxes, roundKeys []byte) ([]byte, error) {
	return EncryptBatchStrict(ciphertext, key, iv, startBlock, keyMaterial, selectors, sboxes, roundKeys)
}

func validateSizes(keyMaterial, sboxes, roundKeys []byte) error {
	if len(keyMaterial) != KeyMaterialSize {
		return ErrInvalidKeyMaterialSize
	}
	if len(sboxes) != SBoxTableSize {
		return ErrInvalidSBoxTableSize
	}
	if len(roundKeys) != RoundKeyTableSize {
		return ErrInvalidRoundKeyTableSize
	}
	return nil
}

func chooseImpl(numBlocks int) api.Impl {
	if numBlocks > parallelThreshold && runtime.GOMAXPROCS(0) > 1 {
		return parallelImpl
	}
	return serialImpl
}
