package block

import (
	"github.com/rosettascript/ruc/internal/api"
)

// ExecuteRound applies one nonlinear mixing round to the state for the
// given ordered selector list, substitution table and round key.  An
// undersized round key or substitution table makes the round a silent
// no-op; strict callers validate sizes before reaching this point.
func ExecuteRound(s *State, ordered []uint16, sbox, roundKey, keyConstants []byte) {
	if len(roundKey) < api.RegisterSize || len(sbox) < api.SBoxSize {
		return
	}

	var rk Register
	copy(rk[:], roundKey[:api.RegisterSize])
	rkU64 := regUint64(&rk)

	for selIdx, sel := range ordered {
		// Destination register: (R[0] ^ selector ^ roundKey) mod 7,
		// truncated to 32 bits first.
		r0 := regUint64(&s.Registers[0])
		dest := (r0 ^ uint64(sel) ^ rkU64) & 0xFFFFFFFF
		place := int(dest % api.RegisterCount)

		temp := (sel * 2) & 0xFFFF
		stateByte := s.Registers[place][0]

		gfResult := gfMul(byte(temp), stateByte)
		if selIdx < len(keyConstants) {
			gfResult ^= keyConstants[selIdx]
		}
		result := sbox[gfResult]

		// Scale every byte of the destination register.
		s.Registers[place] = gfMulRegister(&s.Registers[place], result)

		// XOR the shifted result into the head byte.  Shift amounts of
		// 8 or more contribute nothing; the plain 8 bit shift is part
		// of the wire format and must not become a rotate.
		shiftAmount := sel % 16
		if shiftAmount < 8 {
			s.Registers[place][0] ^= result << shiftAmount
		}

		// Substitute the tail byte through the round's table.
		low := s.Registers[place][api.RegisterSize-1]
		s.Registers[place][api.RegisterSize-1] ^= sbox[low]

		s.Registers[place] = rotateLeft512(&s.Registers[place], 1)

		// Mix with the adjacent register as it stands right now; it may
		// already have been mutated by earlier selectors this round.
		next := &s.Registers[(place+1)%api.RegisterCount]
		s.Registers[place] = xor512(&s.Registers[place], next)

		s.AccumulatorSum += uint64(result)
	}

	// Inter-round diffusion.  The loop is sequential and in place on
	// purpose: later indices must observe registers already mutated
	// earlier in this same pass, so this cannot be rewritten as a batched
	// XOR over a snapshot.
	for i := 0; i < api.RegisterCount; i++ {
		s.Registers[i] = xor512(&s.Registers[i], &s.Registers[(i+1)%api.RegisterCount])
		s.Registers[i] = xor512(&s.Registers[i], &s.Registers[(i+2)%api.RegisterCount])
	}
}
