package gcn

import (
	"github.com/gcndis/gcn/feats"
	flags "github.com/gcndis/gcn/flags"
)

// Cache-policy bits carried by the cpol operand.
const (
	cpolGLC = 1
	cpolSLC = 2
	cpolDLC = 4
)

// Table-specific conversions, applied before the generic fixups.
const (
	convNone uint8 = iota
	convSDWA
	convDPP16
	convDPP8
	convGFX10B
)

func (s *session) applyTableConv(conv uint8, in *Inst) error {
	switch conv {
	case convSDWA:
		s.convertSDWA(in)
	case convDPP16, convDPP8:
		s.convertDPP(in)
	case convGFX10B:
		// the alternate-encoding table reuses lane-select shapes
		if in.Op.desc().slotIndex(OpDPP8) >= 0 {
			s.convertDPP(in)
		}
	}
	return nil
}

// convertSDWA papers over generation differences in the sub-dword forms:
// gfx8 lacks the output-modifier field and the explicit compare destination,
// gfx9 and gfx10 lack the compare clamp bit.
func (s *session) convertSDWA(in *Inst) {
	fl := in.Op.Flags()
	if s.sub.gen == feats.GFX8 {
		in.insertNamed(OpOMod, Imm{})
		if hasFlag(fl, flags.VOPC) {
			in.insertNamed(OpSDst, s.waveVCC())
		}
	}
	if hasFlag(fl, flags.VOPC) {
		in.insertNamed(OpClamp, Imm{})
	}
}

// convertDPP completes the lane-select forms: multiply-accumulate shapes get
// their dummy accumulator operands, and packed-math forms get their
// standalone selector operands rebuilt from the per-source modifiers.
func (s *session) convertDPP(in *Inst) {
	if hasFlag(in.Op.Flags(), flags.MAC) {
		in.insertNamed(OpOld, Reg(0))
		in.insertNamed(OpSrc2Mods, Imm{})
	}
	s.collectVOPModifiers(in)
	if in.Op.desc().slotIndex(OpVDstIn) >= 0 {
		in.insertNamed(OpVDstIn, Imm{})
	}
}

// collectVOPModifiers rebuilds the standalone op_sel/op_sel_hi/neg_lo/neg_hi
// operands from the per-source modifier operands, for forms whose encoding
// does not carry them separately.
func (s *session) collectVOPModifiers(in *Inst) {
	var opSel, opSelHi, negLo, negHi int64
	mods := [3]OpName{OpSrc0Mods, OpSrc1Mods, OpSrc2Mods}
	for i, name := range mods {
		o, ok := in.Named(name)
		if !ok {
			continue
		}
		m, ok := o.(Imm)
		if !ok {
			continue
		}
		if m.Val&srcModOpSel0 != 0 {
			opSel |= 1 << i
		}
		if m.Val&srcModOpSel1 != 0 {
			opSelHi |= 1 << i
		}
		if m.Val&srcModNeg != 0 {
			negLo |= 1 << i
		}
		if m.Val&srcModAbs != 0 {
			negHi |= 1 << i
		}
	}
	in.insertNamed(OpOpSel, Imm{Val: opSel})
	in.insertNamed(OpOpSelHi, Imm{Val: opSelHi})
	in.insertNamed(OpNegLo, Imm{Val: negLo})
	in.insertNamed(OpNegHi, Imm{Val: negHi})
}

// applyFixups runs the generic post-decode normalizations in fixed order.
func (s *session) applyFixups(in *Inst) error {
	fl := in.Op.Flags()

	// multiply-accumulate shapes carry an undecoded secondary modifier
	if hasFlag(fl, flags.MAC) {
		in.insertNamed(OpSrc2Mods, Imm{})
	}

	// data-share ops keep their share-select operand on hardware without
	// a global data share
	if hasFlag(fl, flags.DS) {
		in.insertNamed(OpGDS, Imm{})
	}

	// atomics that return the previous value always behave coherent
	if hasFlag(fl, flags.MUBUF|flags.MTBUF|flags.FLAT|flags.SMEM) {
		if hasFlag(fl, flags.ATOMIC_RET) {
			if i := in.namedIndex(OpCPol); i >= 0 {
				if imm, ok := in.Operands[i].(Imm); ok {
					imm.Val |= cpolGLC
					in.Operands[i] = imm
				}
			} else {
				in.insertNamed(OpCPol, Imm{Val: cpolGLC})
			}
		} else {
			in.insertNamed(OpCPol, Imm{})
		}
	}

	if hasFlag(fl, flags.MUBUF|flags.MTBUF) {
		if s.sub.Has(feats.GFX90A_INSTS) {
			in.insertNamed(OpTFE, Imm{})
		}
		in.insertNamed(OpSWZ, Imm{})
	}

	if hasFlag(fl, flags.MIMG) {
		s.convertMIMG(in)
	}

	if hasFlag(fl, flags.EXP) && s.sub.gen >= feats.GFX11 {
		in.insertNamed(OpVM, Imm{})
		in.insertNamed(OpCompr, Imm{})
	}

	if hasFlag(fl, flags.VINTERP) {
		in.insertNamed(OpOpSel, Imm{})
	}

	// tied second destination mirrors the primary
	if in.Op.desc().slotIndex(OpVDstIn) >= 0 {
		if o, ok := in.Named(OpVDst); ok {
			in.setNamed(OpVDstIn, o)
		}
	}

	if hasFlag(fl, flags.KIMM) && !hasFlag(fl, flags.SOPK) {
		s.broadcastLiteral(in)
	}
	return nil
}

// broadcastLiteral replaces deferred-literal placeholders with the
// instruction's single literal value.
func (s *session) broadcastLiteral(in *Inst) {
	if !s.hasLiteral {
		return
	}
	desc := in.Op.desc()
	for i := range in.Operands {
		sl := &desc.slots[in.slots[i]]
		if sl.kind != kSrcDeferred {
			continue
		}
		if imm, ok := in.Operands[i].(Imm); ok && imm.Val == srcLiteral {
			in.Operands[i] = Imm{Val: int64(s.literal), Width: 32}
		}
	}
}

// mimgDimCoords is the base coordinate count per dimension code.
var mimgDimCoords = [8]uint8{1, 2, 3, 3, 2, 3, 2, 3}

// convertMIMG canonicalizes an image op: compute the data and address widths
// from dmask, dim, a16, tfe and d16, then rewrite the opcode to the variant
// with matching register groups. Running it on an already-canonical
// instruction is a no-op.
func (s *session) convertMIMG(in *Inst) {
	base := mimgBaseOf(in.Op)
	if base == INVALID {
		return
	}

	dataDw := s.mimgDataSize(in)
	addrDw := s.mimgAddrSize(in)
	if dataDw < 1 || dataDw > 6 || addrDw < 1 {
		in.warnf("image data or address size out of range")
		return
	}

	// count the address operands the encoding carried
	have := 0
	for i := 0; i < 5; i++ {
		if _, ok := in.Named(OpVAddr0 + OpName(i)); ok {
			have++
		}
	}

	slots, lastDw := 1, addrDw
	if s.mimgNSA {
		slots = have
		if slots > int(addrDw) {
			slots = int(addrDw)
		}
		lastDw = addrDw - uint8(slots) + 1
		if lastDw > 1 && !s.sub.Has(feats.PARTIAL_NSA_ENCODING) {
			in.warnf("image address registers exceed the encoded count")
			return
		}
	}
	if lastDw > 4 || slots > 4 {
		in.warnf("image address size out of range")
		return
	}

	op, ok := mimgVariants[mimgKey(base, dataDw, slots, lastDw)]
	if !ok {
		in.warnf("no image variant for data %d, address %d", dataDw, addrDw)
		return
	}

	// collect decoded address register numbers before rewriting
	var addrs [5]uint8
	for i := 0; i < have; i++ {
		if o, ok := in.Named(OpVAddr0 + OpName(i)); ok {
			if r, ok := o.(Reg); ok {
				addrs[i] = r.Num()
			}
		}
	}
	for i := 0; i < 5; i++ {
		in.removeNamed(OpVAddr0 + OpName(i))
	}

	// slot positions shift with the address group count, so remap the
	// surviving operands onto the variant's descriptor by name
	prev := in.Op.desc()
	in.Op = op
	next := op.desc()
	for i := range in.Operands {
		in.slots[i] = uint8(next.slotIndex(prev.slots[in.slots[i]].name))
	}

	for i := 0; i < slots; i++ {
		dw := uint8(1)
		if i == slots-1 {
			dw = lastDw
		}
		if uint32(addrs[i])+uint32(dw) > numVGPRs {
			in.insertNamed(OpVAddr0+OpName(i), Bad{Enc: uint32(addrs[i]), Reason: "vgpr out of range"})
			in.warnf("image address register group out of range")
			continue
		}
		in.insertNamed(OpVAddr0+OpName(i), VReg(dw, addrs[i]))
	}

	// widen the data register group
	if i := in.namedIndex(OpVData); i >= 0 {
		if r, ok := in.Operands[i].(Reg); ok {
			if uint32(r.Num())+uint32(dataDw) > numVGPRs {
				in.warnf("image data register group out of range")
			} else {
				in.Operands[i] = makeReg(int(r.Family()), dataDw, r.Num())
			}
		}
	}
}

func mimgBaseOf(op Op) Op {
	d := op.desc()
	for _, base := range mimgBases {
		if opdescs[base].name == d.name {
			return base
		}
	}
	return INVALID
}

func (s *session) mimgDataSize(in *Inst) uint8 {
	var dmask int64
	if o, ok := in.Named(OpDMask); ok {
		if imm, ok := o.(Imm); ok {
			dmask = imm.Val
		}
	}
	n := uint8(0)
	if hasFlag(in.Op.Flags(), flags.GATHER4) {
		n = 4
	} else {
		for m := dmask & 0xf; m != 0; m >>= 1 {
			n += uint8(m & 1)
		}
	}
	if o, ok := in.Named(OpD16); ok {
		if imm, ok := o.(Imm); ok && imm.Val != 0 && s.sub.Has(feats.PACKED_D16_VMEM) {
			n = (n + 1) / 2
		}
	}
	if o, ok := in.Named(OpTFE); ok {
		if imm, ok := o.(Imm); ok && imm.Val != 0 {
			n++
		}
	}
	return n
}

func (s *session) mimgAddrSize(in *Inst) uint8 {
	dim := int64(0)
	if o, ok := in.Named(OpDim); ok {
		if imm, ok := o.(Imm); ok {
			dim = imm.Val
		}
	}
	n := mimgDimCoords[dim&7]
	if o, ok := in.Named(OpA16); ok {
		if imm, ok := o.(Imm); ok && imm.Val != 0 {
			n = (n + 1) / 2
		}
	}
	return n
}
