// Package block implements the per-block pipeline of the Random Universe
// Cipher: fresh state construction, selector ordering, the 24 mixing
// rounds, keystream derivation, and ciphertext feedback.
//
// Everything here is deterministic and allocation-light; a block's State is
// owned exclusively by its caller, so the package is safe to drive from
// concurrent workers over disjoint block ranges.
package block

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/rosettascript/ruc/internal/api"
)

// Keystream folds the full state plus the block index into the 32-byte
// keystream for that block.
func Keystream(s *State, blockIndex uint64) [api.BlockSize]byte {
	combined := make([]byte, 0, api.RegisterCount*api.RegisterSize+api.AccumulatorSize+8+len(api.DomainKeystream))
	for i := range s.Registers {
		combined = append(combined, s.Registers[i][:]...)
	}
	combined = append(combined, s.Accumulator[:]...)
	combined = binary.BigEndian.AppendUint64(combined, blockIndex)
	combined = append(combined, api.DomainKeystream...)

	var keystream [api.BlockSize]byte
	copy(keystream[:], api.XOF(combined, api.BlockSize))
	return keystream
}

// ApplyFeedback mutates the state from the just-produced ciphertext block.
// The batch pipeline discards the state immediately afterwards, but callers
// chaining further rounds depend on this exact transform, including the
// shift-disable convention for shift amounts of 8 and above.
func ApplyFeedback(s *State, ciphertext *[api.BlockSize]byte) {
	for i := 0; i < api.RegisterCount; i++ {
		shift := (i * 37) % 256
		for j := 0; j < api.RegisterSize; j++ {
			b := ciphertext[j%api.BlockSize]
			if shift < 8 {
				b <<= shift
			}
			s.Registers[i][j] ^= b
		}
	}
}

// Encrypt processes a single 32-byte block: it derives the keystream for
// blockIndex from fresh state and XORs it over src into dst.  dst and src
// must each hold exactly BlockSize bytes and may alias.  Decryption is the
// same transform.
func Encrypt(dst, src []byte, blockIndex uint64, p *api.Params) {
	s := NewState(p.KeyMaterial)
	ordered := OrderSelectors(p.Selectors, p.Key, p.IV, blockIndex)
	constants := KeyConstants(ordered, p.Key)

	for round := 0; round < api.Rounds; round++ {
		sboxOff := round * api.SBoxSize
		keyOff := round * api.RoundKeySize
		if sboxOff+api.SBoxSize > len(p.SBoxes) || keyOff+api.RoundKeySize > len(p.RoundKeys) {
			// Undersized tables skip the round rather than failing;
			// compatibility with existing ciphertext requires it.
			continue
		}
		ExecuteRound(s, ordered,
			p.SBoxes[sboxOff:sboxOff+api.SBoxSize],
			p.RoundKeys[keyOff:keyOff+api.RoundKeySize],
			constants)
	}

	keystream := Keystream(s, blockIndex)
	subtle.XORBytes(dst, src, keystream[:])

	var ciphertext [api.BlockSize]byte
	copy(ciphertext[:], dst)
	ApplyFeedback(s, &ciphertext)
}
