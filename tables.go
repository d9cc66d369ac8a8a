package gcn

import (
	"github.com/gcndis/gcn/feats"
	flags "github.com/gcndis/gcn/flags"
)

// enc is one encoding candidate: fixed bits over the low two words.
type enc struct {
	mask, bits uint64
	op         Op
}

// encTable groups candidates sharing a gate, a field layout, and an optional
// structural validity predicate. Tables are probed in cascade order;
// candidates within a table in declaration order.
type encTable struct {
	name    string
	gate    func(*Subtarget) bool
	valid   func(instBits) bool
	conv    uint8
	layout  func(Op, instBits, *session, *fieldSet) error
	entries []enc
}

func gateLE9(st *Subtarget) bool  { return st.gen <= feats.GFX9 }
func gate8(st *Subtarget) bool    { return st.gen == feats.GFX8 }
func gate9(st *Subtarget) bool    { return st.gen == feats.GFX9 }
func gate10(st *Subtarget) bool   { return st.gen == feats.GFX10 }
func gateGE10(st *Subtarget) bool { return st.gen >= feats.GFX10 }
func gateGE11(st *Subtarget) bool { return st.gen >= feats.GFX11 }
func gateLE10(st *Subtarget) bool { return st.gen <= feats.GFX10 }
func gate11(st *Subtarget) bool   { return st.gen == feats.GFX11 }
func gate12(st *Subtarget) bool   { return st.gen == feats.GFX12 }

func gate10B(st *Subtarget) bool { return st.Has(feats.GFX10_B_ENCODING) }
func gate90A(st *Subtarget) bool { return st.Has(feats.GFX90A_INSTS) }
func gateD16(st *Subtarget) bool { return st.Has(feats.UNPACKED_D16_VMEM) }
func gateMix(st *Subtarget) bool {
	return st.gen == feats.GFX9 && st.Has(feats.FMA_MIX_INSTS)
}

// Lane-select sentinel predicates. The 8-lane-select selector shares the
// src0 field, so it cannot be part of the structural mask; a miss resumes
// the cascade at the next candidate.
func validDPP8of32(b instBits) bool {
	c := b.d0() & 0x1ff
	return c == dppSentinelFI0 || c == dppSentinelFI1
}

func validDPP8of64(b instBits) bool {
	c := b.d1() & 0x1ff
	return c == dppSentinelFI0 || c == dppSentinelFI1
}

// A three-address form only occupies twelve bytes when one source is the
// trailing literal.
func validLit96(b instBits) bool {
	d1 := b.d1()
	return d1&0x1ff == srcLiteral || d1>>9&0x1ff == srcLiteral || d1>>18&0x1ff == srcLiteral
}

// layout32 extracts the fields of the 4-byte scalar and vector forms.
func layout32(op Op, b instBits, s *session, f *fieldSet) error {
	d0 := b.d0()
	fl := op.Flags()
	switch {
	case hasFlag(fl, flags.SOP2):
		f.put(OpSDst, d0>>16&0x7f)
		f.put(OpSrc0, d0&0xff)
		f.put(OpSrc1, d0>>8&0xff)
	case hasFlag(fl, flags.SOP1):
		f.put(OpSDst, d0>>16&0x7f)
		f.put(OpSrc0, d0&0xff)
	case hasFlag(fl, flags.SOPC):
		f.put(OpSrc0, d0&0xff)
		f.put(OpSrc1, d0>>8&0xff)
	case hasFlag(fl, flags.SOPK):
		f.put(OpSDst, d0>>16&0x7f)
		f.put(OpSImm16, d0&0xffff)
	case hasFlag(fl, flags.SOPP):
		f.put(OpSImm16, d0&0xffff)
	case hasFlag(fl, flags.VOP1):
		f.put(OpVDst, d0>>17&0xff)
		f.put(OpSrc0, d0&0x1ff)
	case hasFlag(fl, flags.VOP2):
		f.put(OpVDst, d0>>17&0xff)
		f.put(OpSrc0, d0&0x1ff)
		f.put(OpSrc1, d0>>9&0xff)
	case hasFlag(fl, flags.VOPC):
		f.put(OpSrc0, d0&0x1ff)
		f.put(OpSrc1, d0>>9&0xff)
	}
	return nil
}

func vop3Fields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	fl := op.Flags()
	var abs, opsel uint32
	switch {
	case hasFlag(fl, flags.VOPC):
		f.put(OpSDst, d0&0xff)
	case op.desc().slotIndex(OpSDst) >= 0:
		// carry/paired destination replaces the modifier bits
		f.put(OpVDst, d0&0xff)
		f.put(OpSDst, d0>>8&0x7f)
	default:
		f.put(OpVDst, d0&0xff)
		abs = d0 >> 8 & 7
		if s.sub.gen >= feats.GFX10 {
			opsel = d0 >> 11 & 0xf
		}
	}
	f.put(OpClamp, d0>>15&1)
	neg := d1 >> 29 & 7
	srcs := [3]uint32{d1 & 0x1ff, d1 >> 9 & 0x1ff, d1 >> 18 & 0x1ff}
	mods := [3]OpName{OpSrc0Mods, OpSrc1Mods, OpSrc2Mods}
	names := [3]OpName{OpSrc0, OpSrc1, OpSrc2}
	for i := 0; i < 3; i++ {
		f.put(names[i], srcs[i])
		m := neg >> i & 1 * srcModNeg
		m |= abs >> i & 1 * srcModAbs
		m |= opsel >> i & 1 * srcModOpSel0
		f.put(mods[i], m)
	}
	f.put(OpOMod, d1>>27&3)
}

func vop3pFields(op Op, b instBits, s *session, f *fieldSet, standalone bool) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpVDst, d0&0xff)
	negHi := d0 >> 8 & 7
	opsel := d0 >> 11 & 7
	opselHi2 := d0 >> 14 & 1
	f.put(OpClamp, d0>>15&1)
	neg := d1 >> 29 & 7
	opselHi := d1>>27&3 | opselHi2<<2
	srcs := [3]uint32{d1 & 0x1ff, d1 >> 9 & 0x1ff, d1 >> 18 & 0x1ff}
	mods := [3]OpName{OpSrc0Mods, OpSrc1Mods, OpSrc2Mods}
	names := [3]OpName{OpSrc0, OpSrc1, OpSrc2}
	for i := 0; i < 3; i++ {
		f.put(names[i], srcs[i])
		m := neg >> i & 1 * srcModNeg
		m |= negHi >> i & 1 * srcModAbs
		m |= opsel >> i & 1 * srcModOpSel0
		m |= opselHi >> i & 1 * srcModOpSel1
		f.put(mods[i], m)
	}
	if standalone {
		f.put(OpOpSel, opsel)
		f.put(OpOpSelHi, opselHi)
		f.put(OpNegLo, neg)
		f.put(OpNegHi, negHi)
	}
}

// layoutMAI extracts the matrix multiply-accumulate form: the
// output-modifier bits are repurposed as per-source accumulator-bank selects.
func layoutMAI(op Op, b instBits, s *session, f *fieldSet) error {
	d0, d1 := b.d0(), b.d1()
	f.put(OpVDst, d0&0xff)
	acc := d1 >> 27 & 3
	f.put(OpSrc0, d1&0x1ff|acc&1<<9)
	f.put(OpSrc1, d1>>9&0x1ff|(acc>>1)<<9)
	f.put(OpSrc2, d1>>18&0x1ff)
	return nil
}

func vinterpFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpVDst, d0&0xff)
	f.put(OpWaitEXP, d0>>8&7)
	f.put(OpClamp, d0>>15&1)
	neg := d1 >> 29 & 7
	srcs := [3]uint32{d1 & 0x1ff, d1 >> 9 & 0x1ff, d1 >> 18 & 0x1ff}
	mods := [3]OpName{OpSrc0Mods, OpSrc1Mods, OpSrc2Mods}
	names := [3]OpName{OpSrc0, OpSrc1, OpSrc2}
	for i := 0; i < 3; i++ {
		f.put(names[i], srcs[i])
		f.put(mods[i], neg>>i&1*srcModNeg)
	}
}

func smemFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpSBase, (d0&0x3f)<<1)
	f.put(OpSData, d0>>6&0x7f)
	switch {
	case s.sub.gen == feats.GFX8:
		f.put(OpOffset, d1&0xfffff)
	case s.sub.gen >= feats.GFX12:
		f.put(OpOffset, d1&0xffffff)
	default:
		f.put(OpOffset, d1&0x1fffff)
	}
	if s.sub.gen >= feats.GFX10 {
		f.put(OpSOffset, d1>>25&0x7f)
	}
}

func dsFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpOffset, d0&0xffff)
	f.put(OpOffset0, d0&0xff)
	f.put(OpOffset1, d0>>8&0xff)
	if s.sub.Has(feats.GDS) {
		f.put(OpGDS, d0>>16&1)
	}
	f.put(OpAddr, d1&0xff)
	f.put(OpData0, d1>>8&0xff)
	f.put(OpData1, d1>>16&0xff)
	f.put(OpVDst, d1>>24&0xff)
}

func mubufFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpOffset, d0&0xfff)
	f.put(OpOffEn, d0>>12&1)
	f.put(OpIdxEn, d0>>13&1)
	cpol := d0 >> 14 & 1 // glc
	cpol |= d1 >> 22 & 1 << 1
	if s.sub.gen >= feats.GFX10 {
		cpol |= d0 >> 15 & 1 << 2 // dlc
		f.put(OpSWZ, d0>>16&1)
	}
	f.put(OpCPol, cpol)
	f.put(OpVAddr0, d1&0xff)
	vdata := d1 >> 8 & 0xff
	if s.sub.Has(feats.GFX90A_INSTS) {
		// the sample-fail bit is repurposed as the accumulator-bank bit
		vdata |= d1 >> 23 & 1 << 9
	} else {
		f.put(OpTFE, d1>>23&1)
	}
	f.put(OpVData, vdata)
	f.put(OpSRsrc, (d1>>16&0x1f)<<2)
	f.put(OpSOffset, d1>>24&0xff)
}

func flatFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpOffset, d0&0x1fff)
	f.put(OpCPol, d0>>16&1|d0>>17&1<<1)
	f.put(OpAddr, d1&0xff)
	acc := uint32(0)
	if s.sub.Has(feats.GFX90A_INSTS) {
		acc = d1 >> 23 & 1 << 9
	}
	f.put(OpData0, d1>>8&0xff|acc)
	if saddr := d1 >> 16 & 0x7f; saddr != 0x7f { // 0x7f encodes "off"
		f.put(OpSAddr, saddr)
	}
	f.put(OpVDst, d1>>24&0xff|acc)
}

func mimgFields(op Op, b instBits, s *session, f *fieldSet) error {
	d0, d1 := b.d0(), b.d1()
	f.put(OpDMask, d0>>8&0xf)
	f.put(OpUNorm, d0>>12&1)
	f.put(OpR128, d0>>15&1)
	f.put(OpTFE, d0>>16&1)
	f.put(OpLWE, d0>>17&1)
	cpol := d0>>13&1 | d0>>25&1<<1
	f.put(OpVAddr0, d1&0xff)
	f.put(OpVData, d1>>8&0xff)
	f.put(OpSRsrc, (d1>>16&0x1f)<<2)
	f.put(OpSSamp, (d1>>21&0x1f)<<2)
	if s.sub.gen >= feats.GFX10 {
		f.put(OpDim, d0>>3&7)
		f.put(OpA16, d0>>6&1)
		f.put(OpD16, d0>>7&1)
		cpol |= d1 >> 26 & 1 << 2 // dlc
		if nsa := d0 >> 1 & 3; nsa > 0 && s.sub.Has(feats.NSA_ENCODING) {
			if len(s.buf) < 8+int(nsa)*4 {
				return ErrTruncated
			}
			extra := int(nsa) * 4
			if extra > 4 {
				extra = 4
			}
			for i := 0; i < extra; i++ {
				f.put(OpVAddr1+OpName(i), uint32(s.buf[8+i]))
			}
			s.pos = 8 + int(nsa)*4
			s.mimgNSA = true
		}
	} else {
		f.put(OpD16, d1>>31&1)
	}
	f.put(OpCPol, cpol)
	return nil
}

func expFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpEn, d0&0xf)
	f.put(OpTgt, d0>>4&0x3f)
	f.put(OpDone, d0>>11&1)
	if s.sub.gen < feats.GFX11 {
		f.put(OpCompr, d0>>10&1)
		f.put(OpVM, d0>>12&1)
	}
	f.put(OpSrc0, d1&0xff)
	f.put(OpSrc1, d1>>8&0xff)
	f.put(OpSrc2, d1>>16&0xff)
	f.put(OpSrc3, d1>>24&0xff)
}

func vopdFields(op Op, b instBits, s *session, f *fieldSet) {
	d0, d1 := b.d0(), b.d1()
	f.put(OpSrc0X, d0&0x1ff)
	f.put(OpVSrc1X, d0>>9&0xff)
	f.put(OpSrc0Y, d1&0x1ff)
	f.put(OpVSrc1Y, d1>>9&0xff)
	f.put(OpVDstY, d1>>17&0x3f)
	f.put(OpVDstX, d1>>24&0xff)
}

// layout64 extracts the fields of the plain 8-byte forms.
func layout64(op Op, b instBits, s *session, f *fieldSet) error {
	fl := op.Flags()
	switch {
	case hasFlag(fl, flags.VOPD):
		vopdFields(op, b, s, f)
	case hasFlag(fl, flags.VOP2):
		// two-source form with a mandatory literal in the second word
		if err := layout32(op, b, s, f); err != nil {
			return err
		}
		f.put(OpImm, b.d1())
	case hasFlag(fl, flags.VOP3P):
		vop3pFields(op, b, s, f, true)
	case hasFlag(fl, flags.VINTERP):
		vinterpFields(op, b, s, f)
	case hasFlag(fl, flags.VOP3):
		vop3Fields(op, b, s, f)
	case hasFlag(fl, flags.SMEM):
		smemFields(op, b, s, f)
	case hasFlag(fl, flags.DS):
		dsFields(op, b, s, f)
	case hasFlag(fl, flags.MUBUF) || hasFlag(fl, flags.MTBUF):
		mubufFields(op, b, s, f)
	case hasFlag(fl, flags.FLAT):
		flatFields(op, b, s, f)
	case hasFlag(fl, flags.MIMG):
		return mimgFields(op, b, s, f)
	case hasFlag(fl, flags.EXP):
		expFields(op, b, s, f)
	}
	return nil
}

// layoutSDWA extracts the sub-dword extension word.
func layoutSDWA(op Op, b instBits, s *session, f *fieldSet) error {
	d0, d1 := b.d0(), b.d1()
	fl := op.Flags()
	gfx9plus := s.sub.gen >= feats.GFX9

	src0 := d1 & 0xff
	if gfx9plus {
		src0 |= d1 >> 23 & 1 << 8
	}
	f.put(OpSrc0, src0)
	f.put(OpSrc0Mods, d1>>20&1*srcModNeg|d1>>21&1*srcModAbs|d1>>19&1*srcModSext)
	f.put(OpSrc0Sel, d1>>16&7)

	if hasFlag(fl, flags.VOP1) || hasFlag(fl, flags.VOP2) {
		f.put(OpVDst, d0>>17&0xff)
		f.put(OpDstSel, d1>>8&7)
		f.put(OpDstUnused, d1>>11&3)
		f.put(OpClamp, d1>>13&1)
		if gfx9plus {
			f.put(OpOMod, d1>>14&3)
		}
	}
	if hasFlag(fl, flags.VOP2) || hasFlag(fl, flags.VOPC) {
		src1 := d0 >> 9 & 0xff
		if gfx9plus {
			src1 |= d1 >> 31 & 1 << 8
		}
		f.put(OpSrc1, src1)
		f.put(OpSrc1Mods, d1>>28&1*srcModNeg|d1>>29&1*srcModAbs|d1>>27&1*srcModSext)
		f.put(OpSrc1Sel, d1>>24&7)
	}
	if hasFlag(fl, flags.VOPC) && gfx9plus {
		f.put(OpSDst, d1>>8&0x7f)
	}
	return nil
}

// layoutDPP16 extracts the per-lane-select extension word of the 8-byte
// forms.
func layoutDPP16(op Op, b instBits, s *session, f *fieldSet) error {
	d0, d1 := b.d0(), b.d1()
	fl := op.Flags()
	f.put(OpVDst, d0>>17&0xff)
	if hasFlag(fl, flags.VOP2) {
		f.put(OpSrc1, d0>>9&0xff)
		f.put(OpSrc1Mods, d1>>22&1*srcModNeg|d1>>23&1*srcModAbs)
	}
	f.put(OpSrc0, d1&0xff)
	f.put(OpSrc0Mods, d1>>20&1*srcModNeg|d1>>21&1*srcModAbs)
	f.put(OpDPPCtrl, d1>>8&0x1ff)
	if s.sub.gen >= feats.GFX10 {
		f.put(OpFI, d1>>18&1)
	}
	f.put(OpBoundCtrl, d1>>19&1)
	f.put(OpBankMask, d1>>24&0xf)
	f.put(OpRowMask, d1>>28&0xf)
	return nil
}

// layoutDPP8 extracts the 8-lane-select extension word of the 8-byte forms.
func layoutDPP8(op Op, b instBits, s *session, f *fieldSet) error {
	d0, d1 := b.d0(), b.d1()
	if hasFlag(op.Flags(), flags.VOP2) {
		f.put(OpSrc1, d0>>9&0xff)
	}
	f.put(OpVDst, d0>>17&0xff)
	f.put(OpSrc0, d1&0xff)
	f.put(OpDPP8, d1>>8)
	f.put(OpFI, d0&0x1ff)
	return nil
}

// layoutVOP3DPP16 extracts the 12-byte per-lane-select forms: the sentinel
// sits in the src0 field and the real source moves to the third word.
func layoutVOP3DPP16(op Op, b instBits, s *session, f *fieldSet) error {
	d2 := b.d2()
	if hasFlag(op.Flags(), flags.VOP3P) {
		vop3pFields(op, b, s, f, false)
	} else {
		vop3Fields(op, b, s, f)
	}
	f.put(OpSrc0, srcVGPRMin|d2&0xff)
	f.put(OpDPPCtrl, d2>>8&0x1ff)
	f.put(OpFI, d2>>18&1)
	f.put(OpBoundCtrl, d2>>19&1)
	f.put(OpBankMask, d2>>24&0xf)
	f.put(OpRowMask, d2>>28&0xf)
	return nil
}

func layoutVOP3DPP8(op Op, b instBits, s *session, f *fieldSet) error {
	d2 := b.d2()
	if hasFlag(op.Flags(), flags.VOP3P) {
		vop3pFields(op, b, s, f, false)
	} else {
		vop3Fields(op, b, s, f)
	}
	f.put(OpSrc0, srcVGPRMin|d2&0xff)
	f.put(OpDPP8, d2>>8)
	f.put(OpFI, b.d1()&0x1ff)
	return nil
}

// layout96 extracts the plain 12-byte forms: an 8-byte encoding whose third
// word is the literal.
func layout96(op Op, b instBits, s *session, f *fieldSet) error {
	if hasFlag(op.Flags(), flags.VOPD) {
		vopdFields(op, b, s, f)
		f.put(OpImmX, b.d2())
		f.put(OpImmY, b.d2())
		return nil
	}
	vop3Fields(op, b, s, f)
	s.hasLiteral = true
	s.literal = b.d2()
	return nil
}

// Cascade tables. Probed in slice order; first full success wins.

var tables96 = []*encTable{
	{name: "DPP8_96_GFX11", gate: gate11, valid: validDPP8of64, conv: convDPP8, layout: layoutVOP3DPP8, entries: []enc{
		{0xffff0000, 0xd6130000, V_FMA_F32_DPP8},
		{0xffff0000, 0xcc800000, V_PK_ADD_F16_DPP8},
	}},
	{name: "DPP8_96_GFX12", gate: gate12, valid: validDPP8of64, conv: convDPP8, layout: layoutVOP3DPP8, entries: []enc{
		{0xffff0000, 0xd6130000, V_FMA_F32_DPP8},
		{0xffff0000, 0xcc800000, V_PK_ADD_F16_DPP8},
	}},
	{name: "DPP16_96_GFX11", gate: gate11, conv: convDPP16, layout: layoutVOP3DPP16, entries: []enc{
		{0x000001ff_ffff0000, 0x000000fa_d6130000, V_FMA_F32_DPP},
		{0x000001ff_ffff0000, 0x000000fa_d4420000, V_CMP_EQ_F32_E64_DPP},
	}},
	{name: "DPP16_96_GFX12", gate: gate12, conv: convDPP16, layout: layoutVOP3DPP16, entries: []enc{
		{0x000001ff_ffff0000, 0x000000fa_d6130000, V_FMA_F32_DPP},
		{0x000001ff_ffff0000, 0x000000fa_d4420000, V_CMP_EQ_F32_E64_DPP},
	}},
	{name: "GFX1196", gate: gate11, valid: validLit96, layout: layout96, entries: []enc{
		{0xffff0000, 0xd6130000, V_FMA_F32},
	}},
	{name: "GFX1296", gate: gate12, valid: validLit96, layout: layout96, entries: []enc{
		{0xffff0000, 0xd6130000, V_FMA_F32},
	}},
	{name: "VOPD96_GFX11", gate: gate11, layout: layout96, entries: []enc{
		{0xfffe0000, 0xc8840000, V_DUAL_FMAMK_F32_X_FMAMK_F32},
	}},
	{name: "VOPD96_GFX12", gate: gate12, layout: layout96, entries: []enc{
		{0xfffe0000, 0xc8840000, V_DUAL_FMAMK_F32_X_FMAMK_F32},
	}},
}

var tables64 = []*encTable{
	{name: "GFX10_B64", gate: gate10B, conv: convGFX10B, layout: layout64, entries: []enc{
		{0xffff0000, 0xd76e0000, V_FMAC_LEGACY_F32},
	}},
	{name: "DPP864", gate: gateGE10, valid: validDPP8of32, conv: convDPP8, layout: layoutDPP8, entries: []enc{
		{0xfe01fe00, 0x7e000200, V_MOV_B32_DPP8},
		{0xfe000000, 0x06000000, V_ADD_F32_DPP8},
	}},
	{name: "DPP64_GFX8", gate: gateLE9, conv: convDPP16, layout: layoutDPP16, entries: []enc{
		{0xfe0001ff, 0x020000fa, V_ADD_F32_DPP},
		{0xfe0001ff, 0x2c0000fa, V_MAC_F32_DPP},
	}},
	{name: "DPP64", conv: convDPP16, layout: layoutDPP16, entries: []enc{
		{0xfe01ffff, 0x7e0002fa, V_MOV_B32_DPP},
	}},
	{name: "DPP64_GFX10", gate: gateGE10, conv: convDPP16, layout: layoutDPP16, entries: []enc{
		{0xfe0001ff, 0x060000fa, V_ADD_F32_DPP},
	}},
	{name: "SDWA_GFX8", gate: gate8, conv: convSDWA, layout: layoutSDWA, entries: []enc{
		{0xfe01ffff, 0x7e0002f9, V_MOV_B32_SDWA},
		{0xfe0001ff, 0x020000f9, V_ADD_F32_SDWA},
		{0xfe0001ff, 0x3e0000f9, V_ADD_F16_SDWA},
		{0xfffe01ff, 0x7c8400f9, V_CMP_EQ_F32_SDWA},
	}},
	{name: "SDWA_GFX9", gate: gate9, conv: convSDWA, layout: layoutSDWA, entries: []enc{
		{0xfe01ffff, 0x7e0002f9, V_MOV_B32_SDWA},
		{0xfe0001ff, 0x020000f9, V_ADD_F32_SDWA},
		{0xfe0001ff, 0x3e0000f9, V_ADD_F16_SDWA},
		{0xfffe01ff, 0x7c8400f9, V_CMP_EQ_F32_SDWA},
	}},
	{name: "SDWA_GFX10", gate: gate10, conv: convSDWA, layout: layoutSDWA, entries: []enc{
		{0xfe01ffff, 0x7e0002f9, V_MOV_B32_SDWA},
		{0xfe0001ff, 0x060000f9, V_ADD_F32_SDWA},
		{0xfffe01ff, 0x7c8400f9, V_CMP_EQ_F32_SDWA},
	}},
	{name: "GFX80_UNPACKED", gate: gateD16, layout: layout64, entries: []enc{
		{0xfdfc0000, 0xe0200000, BUFFER_LOAD_FORMAT_D16_X},
	}},
	{name: "GFX9_DL", gate: gateMix, layout: layout64, entries: []enc{
		{0xffff0000, 0xd3a00000, V_FMA_MIX_F32},
	}},
	{name: "MAI64", gate: gate90A, layout: layoutMAI, entries: []enc{
		{0xffff0000, 0xd3c20000, V_MFMA_F32_4X4X1F32},
	}},
	{name: "GFX864", gate: gateLE9, layout: layout64, entries: []enc{
		{0xffff0000, 0xd1cb0000, V_FMA_F32},
		{0xffff0000, 0xd2800000, V_ADD_F64},
		{0xffff0000, 0xd1e80000, V_MAD_U64_U32},
		{0xfe000000, 0x2e000000, V_MADMK_F32},
		{0xfffc0000, 0xc0000000, S_LOAD_DWORD},
		{0xfffc0000, 0xc0040000, S_LOAD_DWORDX2},
		{0xfffc0000, 0xc0080000, S_LOAD_DWORDX4},
	}},
	{name: "GFX964", gate: gate9, layout: layout64, entries: []enc{
		{0xffff0000, 0xd1ff0000, V_ADD3_U32},
		{0xffff0000, 0xd3800000, V_PK_ADD_F16},
	}},
	{name: "AMDGPU64", layout: layout64, entries: []enc{
		{0xfffc0000, 0xd8000000, DS_ADD_U32},
		{0xfffc0000, 0xd8800000, DS_ADD_RTN_U32},
		{0xfffc0000, 0xd8340000, DS_WRITE_B32},
		{0xfffc0000, 0xd8d80000, DS_READ_B32},
		{0xfffc0000, 0xd8dc0000, DS_READ2_B32},
		{0xfdfc0000, 0xe0500000, BUFFER_LOAD_DWORD},
		{0xfdfc0000, 0xe0700000, BUFFER_STORE_DWORD},
		{0xfdfc0000, 0xe1080000, BUFFER_ATOMIC_ADD},
		{0xfdfcc000, 0xdc500000, FLAT_LOAD_DWORD},
		{0xfdfcc000, 0xdc508000, GLOBAL_LOAD_DWORD},
		{0xfdfcc000, 0xdd088000, GLOBAL_ATOMIC_ADD},
		{0xfdfc0000, 0xf0000000, IMAGE_LOAD},
		{0xfdfc0000, 0xf0800000, IMAGE_SAMPLE},
		{0xfdfc0000, 0xf0940000, IMAGE_GATHER4},
	}},
	{name: "EXP64", gate: gateLE10, layout: layout64, entries: []enc{
		{0xfc000000, 0xc4000000, EXPORT},
	}},
	{name: "GFX1064", gate: gate10, layout: layout64, entries: []enc{
		{0xffff0000, 0xd7130000, V_FMA_F32},
		{0xffff0000, 0xd76d0000, V_ADD3_U32},
		{0xffff0000, 0xd7640000, V_ADD_F64},
		{0xffff0000, 0xd7760000, V_MAD_U64_U32},
		{0xffff0000, 0xcc800000, V_PK_ADD_F16},
		{0xffff0000, 0xcca00000, V_FMA_MIX_F32},
		{0xfe000000, 0x58000000, V_FMAMK_F32},
		{0xfe000000, 0x5a000000, V_FMAAK_F32},
		{0xfffc0000, 0xf4000000, S_LOAD_DWORD},
		{0xfffc0000, 0xf4040000, S_LOAD_DWORDX2},
		{0xfffc0000, 0xf4080000, S_LOAD_DWORDX4},
	}},
	{name: "GFX1164", gate: gateGE11, layout: layout64, entries: []enc{
		{0xffff0000, 0xd6130000, V_FMA_F32},
		{0xffff0000, 0xd6550000, V_ADD3_U32},
		{0xffff0000, 0xcc800000, V_PK_ADD_F16},
		{0xffff0000, 0xcca00000, V_FMA_MIX_F32},
		{0xffff0000, 0xcd020000, V_INTERP_P10_F16_F32_INREG},
		{0xffff0000, 0xcd030000, V_INTERP_P2_F16_F32_INREG},
		{0xfe000000, 0x58000000, V_FMAMK_F32},
		{0xfe000000, 0x5a000000, V_FMAAK_F32},
		{0xfffc0000, 0xf4000000, S_LOAD_DWORD},
		{0xfffc0000, 0xf4040000, S_LOAD_DWORDX2},
		{0xfffc0000, 0xf4080000, S_LOAD_DWORDX4},
		{0xfc000000, 0xf8000000, EXPORT},
	}},
}

var tables32 = []*encTable{
	{name: "GFX832", gate: gateLE9, layout: layout32, entries: []enc{
		{0xfe01fe00, 0x7e004400, V_RCP_F32},
		{0xfe000000, 0x02000000, V_ADD_F32},
		{0xfe000000, 0x26000000, V_AND_B32},
		{0xfe000000, 0x2c000000, V_MAC_F32},
		{0xff800000, 0x92000000, S_MUL_I32},
	}},
	{name: "AMDGPU32", layout: layout32, entries: []enc{
		{0xffff0000, 0xbf800000, S_NOP},
		{0xffff0000, 0xbf810000, S_ENDPGM},
		{0xffff0000, 0xbf820000, S_BRANCH},
		{0xffff0000, 0xbf840000, S_CBRANCH_SCC0},
		{0xffff0000, 0xbf8c0000, S_WAITCNT},
		{0xff80ff00, 0xbe800300, S_MOV_B32},
		{0xff80ff00, 0xbe800400, S_MOV_B64},
		{0xff80ff00, 0xbe800700, S_NOT_B32},
		{0xff80ff00, 0xbe801c00, S_GETPC_B64},
		{0xff800000, 0x80000000, S_ADD_U32},
		{0xffff0000, 0xbf000000, S_CMP_EQ_I32},
		{0xf8000000, 0xb0000000, S_MOVK_I32},
		{0xfffe0000, 0x7c840000, V_CMP_EQ_F32},
		{0xfffe0000, 0x7d820000, V_CMP_LT_I32},
		{0xfe01fe00, 0x7e000000, V_NOP},
		{0xfe01fe00, 0x7e000200, V_MOV_B32},
		{0xfe01fe00, 0x7e000a00, V_CVT_F32_I32},
		{0xfe000000, 0x00000000, V_CNDMASK_B32},
	}},
	{name: "GFX1032", gate: gate10, layout: layout32, entries: []enc{
		{0xfe01fe00, 0x7e005400, V_RCP_F32},
		{0xfe000000, 0x06000000, V_ADD_F32},
		{0xfe000000, 0x36000000, V_AND_B32},
		{0xfe000000, 0x56000000, V_FMAC_F32},
		{0xff800000, 0x94800000, S_MUL_I32},
	}},
	{name: "GFX1132", gate: gateGE11, layout: layout32, entries: []enc{
		{0xfe01fe00, 0x7e005400, V_RCP_F32},
		{0xfe01fe00, 0x7e003800, V_MOV_B16},
		{0xfe000000, 0x06000000, V_ADD_F32},
		{0xfe000000, 0x56000000, V_FMAC_F32},
		{0xff800000, 0x96000000, S_MUL_I32},
	}},
}

// A 4-byte miss may still be the head of a co-issued pair.
var tables64Post = []*encTable{
	{name: "VOPD64", gate: gateGE11, layout: layout64, entries: []enc{
		{0xfffe0000, 0xc8000000, V_DUAL_MOV_B32_X_MOV_B32},
	}},
}
