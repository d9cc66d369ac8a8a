package gcn

import (
	"encoding/binary"

	"github.com/gcndis/gcn/feats"
)

// Source operand code ranges (32-bit width). Registers and inline constants
// share one 9-bit space; bit 8 selects the vector file and bit 9 (where
// encoded) the accumulator file.
const (
	srcInlineIntMin    = 128 // 128 encodes 0, 129..192 encode 1..64
	srcInlineIntPosMax = 192
	srcInlineIntMax    = 208 // 193..208 encode -1..-16
	srcInlineFPMin     = 240
	srcInlineFPMax     = 248
	srcLiteral         = 255
	srcVGPRMin         = 256
	srcAGPRBit         = 512

	dppSentinelFI0 = 233
	dppSentinelFI1 = 234
	sdwaSentinel   = 249
	dppSentinel    = 250
)

// Source operand modifier bits
const (
	srcModNeg    = 1
	srcModAbs    = 2 // neg_hi in packed-math forms
	srcModSext   = 4
	srcModOpSel0 = 4
	srcModOpSel1 = 8
)

var inlineFP32 = [9]uint32{
	0x3f000000, 0xbf000000, // 0.5, -0.5
	0x3f800000, 0xbf800000, // 1.0, -1.0
	0x40000000, 0xc0000000, // 2.0, -2.0
	0x40800000, 0xc0800000, // 4.0, -4.0
	0x3e22f983, // 1/(2*pi)
}

var inlineFP16 = [9]uint16{
	0x3800, 0xb800,
	0x3c00, 0xbc00,
	0x4000, 0xc000,
	0x4400, 0xc400,
	0x3118,
}

var inlineFP64 = [9]uint64{
	0x3fe0000000000000, 0xbfe0000000000000,
	0x3ff0000000000000, 0xbff0000000000000,
	0x4000000000000000, 0xc000000000000000,
	0x4010000000000000, 0xc010000000000000,
	0x3fc45f306dc9c882,
}

// decodeSlot decodes one operand from its extracted field value. Invalid
// register codes produce a Bad operand plus a warning on the instruction;
// only literal problems are fatal to the candidate.
func (s *session) decodeSlot(in *Inst, sl *slot, val uint32) (Operand, error) {
	switch sl.kind {
	case kVGPR:
		return s.vgpr(in, sl.dw, val&0xff), nil
	case kVGPR16:
		return VReg16(uint8(val&0x7f), val>>7&1 != 0), nil
	case kAGPR:
		return s.agpr(in, sl.dw, val&0xff), nil
	case kSGPR, kBool:
		dw := sl.dw
		if sl.kind == kBool {
			dw = 2
			if s.sub.Wave32() {
				dw = 1
			}
		}
		return s.scalarOrSpecial(in, dw, val), nil
	case kSrc, kSrcFP64, kSrcDeferred, kSrc16, kSrcAV:
		return s.srcOp(in, sl, val)
	case kSrcA:
		return s.agpr(in, sl.dw, val&0xff), nil
	case kAVLdSt:
		return s.avLdSt(in, sl, val), nil
	case kKImm:
		return s.mandatoryLiteral(val)
	case kImm:
		return Imm{Val: int64(val)}, nil
	case kSImm16:
		return Imm{Val: int64(int16(val)), Width: 16}, nil
	case kBranch:
		return s.branch(val), nil
	case kSMEMOffset:
		return s.smemOffset(val), nil
	case kSDWASrc, kSDWASrc16:
		return s.sdwaSrc(in, sl, val)
	case kSDWAVopcDst:
		return s.sdwaVopcDst(in, val), nil
	case kVOPDDstY:
		return s.vopdDstY(in, val), nil
	case kFI:
		// the selector byte doubles as the structural sentinel
		if val == dppSentinelFI1 {
			return Imm{Val: 1}, nil
		}
		return Imm{}, nil
	}
	return Imm{Val: int64(val)}, nil
}

func (s *session) vgpr(in *Inst, dw uint8, n uint32) Operand {
	if n+uint32(dw) > numVGPRs {
		in.warnf("vector register group v[%d:%d] out of range", n, n+uint32(dw)-1)
		return Bad{Enc: n, Reason: "vgpr out of range"}
	}
	return VReg(dw, uint8(n))
}

func (s *session) agpr(in *Inst, dw uint8, n uint32) Operand {
	if n+uint32(dw) > numAGPRs {
		in.warnf("accumulator register group a[%d:%d] out of range", n, n+uint32(dw)-1)
		return Bad{Enc: n, Reason: "agpr out of range"}
	}
	return AReg(dw, uint8(n))
}

// alignShift is the alignment of wide scalar register groups: pairs start on
// even codes, wider groups on multiples of four.
func alignShift(dw uint8) uint32 {
	switch {
	case dw >= 3:
		return 2
	case dw == 2:
		return 1
	}
	return 0
}

func (s *session) sgpr(in *Inst, dw uint8, code uint32) Operand {
	mask := uint32(1)<<alignShift(dw) - 1
	idx := code &^ mask
	if idx != code {
		in.warnf("misaligned scalar register code %d at width %d", code, dw)
	}
	if idx+uint32(dw) > numSGPRs {
		in.warnf("scalar register group s[%d:%d] out of range", idx, idx+uint32(dw)-1)
		return Bad{Enc: code, Reason: "sgpr out of range"}
	}
	return SReg(dw, uint8(idx))
}

func (s *session) ttmp(in *Inst, dw uint8, code uint32) Operand {
	off := code - s.sub.ttmpMin()
	mask := uint32(1)<<alignShift(dw) - 1
	idx := off &^ mask
	if idx != off {
		in.warnf("misaligned trap register code %d at width %d", code, dw)
	}
	if idx+uint32(dw) > numTTMPs {
		in.warnf("trap register group ttmp[%d:%d] out of range", idx, idx+uint32(dw)-1)
		return Bad{Enc: code, Reason: "ttmp out of range"}
	}
	return TTmpReg(dw, uint8(idx))
}

// scalarOrSpecial resolves a 7-bit (or wider, pre-split) scalar code:
// general scalar registers, trap temporaries, then named registers.
func (s *session) scalarOrSpecial(in *Inst, dw uint8, code uint32) Operand {
	if code <= s.sub.sgprMax() {
		return s.sgpr(in, dw, code)
	}
	if min := s.sub.ttmpMin(); code >= min && code <= 123 {
		return s.ttmp(in, dw, code)
	}
	if dw >= 2 {
		return s.special64(in, code)
	}
	return s.special32(in, code)
}

func (s *session) special32(in *Inst, code uint32) Operand {
	gen := s.sub.gen
	switch code {
	case 102:
		return FLAT_SCR_LO
	case 103:
		return FLAT_SCR_HI
	case 104:
		return XNACK_MASK_LO
	case 105:
		return XNACK_MASK_HI
	case 106:
		return VCC_LO
	case 107:
		return VCC_HI
	case 108:
		return TBA_LO
	case 109:
		return TBA_HI
	case 110:
		return TMA_LO
	case 111:
		return TMA_HI
	case 124:
		// 124 and 125 swap meaning at gfx11.
		if gen >= feats.GFX11 {
			return SGPR_NULL
		}
		return M0
	case 125:
		if gen >= feats.GFX11 {
			return M0
		}
		return SGPR_NULL
	case 126:
		return EXEC_LO
	case 127:
		return EXEC_HI
	case 235:
		if gen >= feats.GFX9 {
			return SRC_SHARED_BASE
		}
	case 236:
		if gen >= feats.GFX9 {
			return SRC_SHARED_LIMIT
		}
	case 237:
		if gen >= feats.GFX9 {
			return SRC_PRIVATE_BASE
		}
	case 238:
		if gen >= feats.GFX9 {
			return SRC_PRIVATE_LIMIT
		}
	case 239:
		if gen == feats.GFX9 || gen == feats.GFX10 {
			return SRC_POPS_EXITING_WAVE_ID
		}
	case 251:
		return VCCZ
	case 252:
		return EXECZ
	case 253:
		return SCC
	case 254:
		return LDS_DIRECT
	}
	in.warnf("unknown register code %d", code)
	return Bad{Enc: code, Reason: "unknown register code"}
}

func (s *session) special64(in *Inst, code uint32) Operand {
	gen := s.sub.gen
	switch code {
	case 102:
		return FLAT_SCR
	case 104:
		return XNACK_MASK
	case 106:
		return VCC
	case 108:
		return TBA
	case 110:
		return TMA
	case 124:
		if gen >= feats.GFX11 {
			return SGPR_NULL64
		}
	case 125:
		if gen < feats.GFX11 {
			return SGPR_NULL64
		}
	case 126:
		return EXEC
	case 235, 236, 237, 238:
		if gen >= feats.GFX9 {
			return makeReg(REG_SPECIAL, 2, uint8(code))
		}
	}
	in.warnf("unknown register pair code %d", code)
	return Bad{Enc: code, Reason: "unknown register pair code"}
}

// srcOp resolves a 9/10-bit register-or-constant source code.
func (s *session) srcOp(in *Inst, sl *slot, val uint32) (Operand, error) {
	if val&srcAGPRBit != 0 {
		return s.agpr(in, sl.dw, val&0xff), nil
	}
	if val >= srcVGPRMin {
		if sl.kind == kSrc16 {
			n := val - srcVGPRMin
			return VReg16(uint8(n&0x7f), n>>7&1 != 0), nil
		}
		return s.vgpr(in, sl.dw, val-srcVGPRMin), nil
	}
	return s.constOrScalar(in, sl, val)
}

func (s *session) constOrScalar(in *Inst, sl *slot, val uint32) (Operand, error) {
	switch {
	case val >= srcInlineIntMin && val <= srcInlineIntMax:
		v := int64(val) - srcInlineIntMin
		if val > srcInlineIntPosMax {
			v = int64(srcInlineIntPosMax) - int64(val)
		}
		return Imm{Val: v, Width: sl.imw}, nil
	case val >= srcInlineFPMin && val <= srcInlineFPMax:
		i := val - srcInlineFPMin
		switch sl.imw {
		case 16:
			return Imm{Val: int64(inlineFP16[i]), Width: 16}, nil
		case 64:
			return Imm{Val: int64(inlineFP64[i]), Width: 64}, nil
		default:
			return Imm{Val: int64(inlineFP32[i]), Width: 32}, nil
		}
	case val == srcLiteral:
		if sl.kind == kSrcDeferred {
			// Placeholder; the literal broadcast fixup fills it in.
			return Imm{Val: srcLiteral, Width: sl.imw}, nil
		}
		return s.literalConstant(sl)
	}
	return s.scalarOrSpecial(in, sl.dw, val), nil
}

// literalConstant consumes the trailing 32-bit literal, once per instruction.
func (s *session) literalConstant(sl *slot) (Operand, error) {
	if !s.hasLiteral {
		if len(s.buf)-s.pos < 4 {
			return nil, ErrTruncated
		}
		s.literal = binary.LittleEndian.Uint32(s.buf[s.pos:])
		s.pos += 4
		s.hasLiteral = true
	}
	if sl.imw == 64 && sl.kind == kSrcFP64 {
		// A 64-bit float literal is encoded as its high 32 bits.
		return Imm{Val: int64(uint64(s.literal) << 32), Width: 64}, nil
	}
	return Imm{Val: int64(s.literal), Width: 32}, nil
}

// mandatoryLiteral records a literal carried in the encoding itself. All
// literal positions of one instruction must agree.
func (s *session) mandatoryLiteral(val uint32) (Operand, error) {
	if s.hasLiteral && s.literal != val {
		return nil, ErrLiteralConflict
	}
	s.hasLiteral = true
	s.literal = val
	return Imm{Val: int64(val), Width: 32}, nil
}

// branch resolves a 16-bit signed word offset relative to the next
// instruction.
func (s *session) branch(val uint32) Operand {
	target := s.addr + 4 + uint64(int64(int16(val))*4)
	if s.d.sym != nil {
		s.d.sym.Record(target)
		if name, ok := s.d.sym.Lookup(target); ok {
			return Expr{Sym: name, Target: target}
		}
	}
	return Imm{Val: int64(int16(val)), Width: 16}
}

func (s *session) smemOffset(val uint32) Operand {
	switch {
	case s.sub.gen == feats.GFX8:
		return Imm{Val: int64(val)} // 20-bit unsigned
	case s.sub.gen >= feats.GFX12:
		return Imm{Val: int64(int32(val<<8) >> 8)} // 24-bit signed
	default:
		return Imm{Val: int64(int32(val<<11) >> 11)} // 21-bit signed
	}
}

// sdwaSrc resolves a sub-dword source: an 8-bit vector code, with bit 8
// redirecting to the scalar space on gfx9 and gfx10.
func (s *session) sdwaSrc(in *Inst, sl *slot, val uint32) (Operand, error) {
	if s.sub.gen >= feats.GFX9 && val&0x100 != 0 {
		return s.constOrScalar(in, sl, val&0xff)
	}
	return s.vgpr(in, sl.dw, val&0xff), nil
}

// sdwaVopcDst resolves a compare destination: bit 6 selects an explicit
// scalar over the implicit condition mask.
func (s *session) sdwaVopcDst(in *Inst, val uint32) Operand {
	dw := uint8(2)
	if s.sub.Wave32() {
		dw = 1
	}
	if val&0x40 == 0 {
		return s.waveVCC()
	}
	return s.scalarOrSpecial(in, dw, val&0x3f)
}

// avLdSt resolves a memory data operand. Hardware with a unified accumulator
// file borrows a spare encoding bit to select the bank.
func (s *session) avLdSt(in *Inst, sl *slot, val uint32) Operand {
	if val&srcAGPRBit != 0 {
		return s.agpr(in, sl.dw, val&0xff)
	}
	return s.vgpr(in, sl.dw, val&0xff)
}

// vopdDstY resolves the second destination of a co-issued pair: its low bit
// is the complement of the first destination's.
func (s *session) vopdDstY(in *Inst, val uint32) Operand {
	parity := uint32(0)
	if o, ok := in.Named(OpVDstX); ok {
		if r, ok := o.(Reg); ok {
			parity = uint32(r.Num()) & 1
		}
	}
	return s.vgpr(in, 1, (val<<1)|(parity^1))
}
