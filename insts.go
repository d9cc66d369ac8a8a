package gcn

import (
	flags "github.com/gcndis/gcn/flags"
)

// Opcodes. Values index the descriptor table; canonical image-op variants are
// appended to the table at init and share the base mnemonic.
const (
	INVALID Op = iota

	// scalar ALU
	S_ADD_U32
	S_MUL_I32
	S_MOV_B32
	S_MOV_B64
	S_NOT_B32
	S_GETPC_B64
	S_MOVK_I32
	S_CMP_EQ_I32
	S_NOP
	S_ENDPGM
	S_BRANCH
	S_CBRANCH_SCC0
	S_WAITCNT

	// vector ALU, 4-byte forms
	V_NOP
	V_MOV_B32
	V_MOV_B16
	V_CVT_F32_I32
	V_RCP_F32
	V_CNDMASK_B32
	V_ADD_F32
	V_AND_B32
	V_MAC_F32
	V_FMAC_F32
	V_CMP_EQ_F32
	V_CMP_LT_I32

	// vector ALU with a mandatory literal
	V_MADMK_F32
	V_FMAMK_F32
	V_FMAAK_F32

	// three-address vector ALU
	V_FMA_F32
	V_ADD3_U32
	V_ADD_F64
	V_MAD_U64_U32
	V_FMAC_LEGACY_F32

	// packed math
	V_PK_ADD_F16
	V_FMA_MIX_F32

	// matrix multiply-accumulate (accumulator-bank sources)
	V_MFMA_F32_4X4X1F32

	// interpolation (gfx11+)
	V_INTERP_P10_F16_F32_INREG
	V_INTERP_P2_F16_F32_INREG

	// sub-dword variants
	V_MOV_B32_SDWA
	V_ADD_F32_SDWA
	V_ADD_F16_SDWA
	V_CMP_EQ_F32_SDWA

	// lane-select variants
	V_MOV_B32_DPP
	V_ADD_F32_DPP
	V_MAC_F32_DPP
	V_MOV_B32_DPP8
	V_ADD_F32_DPP8
	V_FMA_F32_DPP
	V_FMA_F32_DPP8
	V_PK_ADD_F16_DPP8
	V_CMP_EQ_F32_E64_DPP

	// dual co-issue (gfx11+)
	V_DUAL_MOV_B32_X_MOV_B32
	V_DUAL_FMAMK_F32_X_FMAMK_F32

	// scalar memory
	S_LOAD_DWORD
	S_LOAD_DWORDX2
	S_LOAD_DWORDX4

	// data share
	DS_ADD_U32
	DS_ADD_RTN_U32
	DS_WRITE_B32
	DS_READ_B32
	DS_READ2_B32

	// buffer
	BUFFER_LOAD_DWORD
	BUFFER_STORE_DWORD
	BUFFER_ATOMIC_ADD
	BUFFER_LOAD_FORMAT_D16_X

	// flat
	FLAT_LOAD_DWORD
	GLOBAL_LOAD_DWORD
	GLOBAL_ATOMIC_ADD

	// export
	EXPORT

	// image (base shapes; canonical variants are appended at init)
	IMAGE_LOAD
	IMAGE_SAMPLE
	IMAGE_GATHER4

	numStaticOps
)

var opdescs = make([]opdesc, numStaticOps, numStaticOps+mimgVariantCap)

func def(op Op, name string, fl uint32, slots ...slot) {
	opdescs[op] = opdesc{name: name, flags: fl, slots: slots}
}

// reg slot
func rs(n OpName, kind, dw uint8) slot { return slot{name: n, kind: kind, dw: dw} }

// reg-or-constant slot with an immediate width
func cs(n OpName, kind, dw, imw uint8) slot { return slot{name: n, kind: kind, dw: dw, imw: imw} }

// bare field slot
func fs(n OpName) slot { return slot{name: n, kind: kImm} }

// slot filled by the normalizer, never decoded from a field
func ns(n OpName) slot { return slot{name: n, kind: kNone} }

func init() {
	def(INVALID, "<invalid>", flags.DEFAULT)

	def(S_ADD_U32, "s_add_u32", flags.SOP2,
		rs(OpSDst, kSGPR, 1), cs(OpSrc0, kSrc, 1, 32), cs(OpSrc1, kSrc, 1, 32))
	def(S_MUL_I32, "s_mul_i32", flags.SOP2,
		rs(OpSDst, kSGPR, 1), cs(OpSrc0, kSrc, 1, 32), cs(OpSrc1, kSrc, 1, 32))
	def(S_MOV_B32, "s_mov_b32", flags.SOP1,
		rs(OpSDst, kSGPR, 1), cs(OpSrc0, kSrc, 1, 32))
	def(S_MOV_B64, "s_mov_b64", flags.SOP1,
		rs(OpSDst, kSGPR, 2), cs(OpSrc0, kSrc, 2, 64))
	def(S_NOT_B32, "s_not_b32", flags.SOP1,
		rs(OpSDst, kSGPR, 1), cs(OpSrc0, kSrc, 1, 32))
	def(S_GETPC_B64, "s_getpc_b64", flags.SOP1,
		rs(OpSDst, kSGPR, 2))
	def(S_MOVK_I32, "s_movk_i32", flags.SOPK,
		rs(OpSDst, kSGPR, 1), slot{name: OpSImm16, kind: kSImm16})
	def(S_CMP_EQ_I32, "s_cmp_eq_i32", flags.SOPC,
		cs(OpSrc0, kSrc, 1, 32), cs(OpSrc1, kSrc, 1, 32))
	def(S_NOP, "s_nop", flags.SOPP, fs(OpSImm16))
	def(S_ENDPGM, "s_endpgm", flags.SOPP, fs(OpSImm16))
	def(S_BRANCH, "s_branch", flags.SOPP, slot{name: OpSImm16, kind: kBranch})
	def(S_CBRANCH_SCC0, "s_cbranch_scc0", flags.SOPP, slot{name: OpSImm16, kind: kBranch})
	def(S_WAITCNT, "s_waitcnt", flags.SOPP, fs(OpSImm16))

	def(V_NOP, "v_nop", flags.VOP1)
	def(V_MOV_B32, "v_mov_b32", flags.VOP1,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32))
	def(V_MOV_B16, "v_mov_b16", flags.VOP1,
		rs(OpVDst, kVGPR16, 1), cs(OpSrc0, kSrc16, 1, 16))
	def(V_CVT_F32_I32, "v_cvt_f32_i32", flags.VOP1,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32))
	def(V_RCP_F32, "v_rcp_f32", flags.VOP1,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32))
	def(V_CNDMASK_B32, "v_cndmask_b32", flags.VOP2,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1),
		slot{name: OpSrc2, kind: kVCC})
	def(V_ADD_F32, "v_add_f32", flags.VOP2,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1))
	def(V_AND_B32, "v_and_b32", flags.VOP2,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1))
	def(V_MAC_F32, "v_mac_f32", flags.VOP2|flags.MAC,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1))
	def(V_FMAC_F32, "v_fmac_f32", flags.VOP2|flags.MAC,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1))
	def(V_CMP_EQ_F32, "v_cmp_eq_f32", flags.VOPC,
		cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1))
	def(V_CMP_LT_I32, "v_cmp_lt_i32", flags.VOPC,
		cs(OpSrc0, kSrc, 1, 32), rs(OpSrc1, kVGPR, 1))

	def(V_MADMK_F32, "v_madmk_f32", flags.VOP2|flags.KIMM,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrcDeferred, 1, 32),
		slot{name: OpImm, kind: kKImm}, rs(OpSrc1, kVGPR, 1))
	def(V_FMAMK_F32, "v_fmamk_f32", flags.VOP2|flags.KIMM,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrcDeferred, 1, 32),
		slot{name: OpImm, kind: kKImm}, rs(OpSrc1, kVGPR, 1))
	def(V_FMAAK_F32, "v_fmaak_f32", flags.VOP2|flags.KIMM,
		rs(OpVDst, kVGPR, 1), cs(OpSrc0, kSrcDeferred, 1, 32), rs(OpSrc1, kVGPR, 1),
		slot{name: OpImm, kind: kKImm})

	def(V_FMA_F32, "v_fma_f32", flags.VOP3,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 32),
		fs(OpSrc2Mods), cs(OpSrc2, kSrc, 1, 32),
		fs(OpClamp), fs(OpOMod))
	def(V_ADD3_U32, "v_add3_u32", flags.VOP3,
		rs(OpVDst, kVGPR, 1),
		cs(OpSrc0, kSrc, 1, 32), cs(OpSrc1, kSrc, 1, 32), cs(OpSrc2, kSrc, 1, 32))
	def(V_ADD_F64, "v_add_f64", flags.VOP3,
		rs(OpVDst, kVGPR, 2),
		fs(OpSrc0Mods), cs(OpSrc0, kSrcFP64, 2, 64),
		fs(OpSrc1Mods), cs(OpSrc1, kSrcFP64, 2, 64),
		fs(OpClamp), fs(OpOMod))
	def(V_MAD_U64_U32, "v_mad_u64_u32", flags.VOP3,
		rs(OpVDst, kVGPR, 2), rs(OpSDst, kBool, 0),
		cs(OpSrc0, kSrc, 1, 32), cs(OpSrc1, kSrc, 1, 32), cs(OpSrc2, kSrc, 2, 64),
		fs(OpClamp))
	def(V_FMAC_LEGACY_F32, "v_fmac_legacy_f32", flags.VOP3|flags.MAC,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 32),
		fs(OpClamp), fs(OpOMod))

	def(V_PK_ADD_F16, "v_pk_add_f16", flags.VOP3P,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 16),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 16),
		fs(OpOpSel), fs(OpOpSelHi), fs(OpNegLo), fs(OpNegHi), fs(OpClamp))
	def(V_FMA_MIX_F32, "v_fma_mix_f32", flags.VOP3P,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 32),
		fs(OpSrc2Mods), cs(OpSrc2, kSrc, 1, 32),
		fs(OpClamp))

	def(V_MFMA_F32_4X4X1F32, "v_mfma_f32_4x4x1f32", flags.VOP3P,
		rs(OpVDst, kAGPR, 4),
		cs(OpSrc0, kSrcAV, 1, 32), cs(OpSrc1, kSrcAV, 1, 32),
		cs(OpSrc2, kSrcA, 4, 32))

	def(V_INTERP_P10_F16_F32_INREG, "v_interp_p10_f16_f32_inreg", flags.VINTERP,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), rs(OpSrc0, kVGPR, 1),
		fs(OpSrc1Mods), rs(OpSrc1, kVGPR, 1),
		fs(OpSrc2Mods), rs(OpSrc2, kVGPR, 1),
		fs(OpClamp), ns(OpOpSel), fs(OpWaitEXP))
	def(V_INTERP_P2_F16_F32_INREG, "v_interp_p2_f16_f32_inreg", flags.VINTERP,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), rs(OpSrc0, kVGPR, 1),
		fs(OpSrc1Mods), rs(OpSrc1, kVGPR, 1),
		fs(OpSrc2Mods), rs(OpSrc2, kVGPR, 1),
		fs(OpClamp), ns(OpOpSel), fs(OpWaitEXP))

	def(V_MOV_B32_SDWA, "v_mov_b32_sdwa", flags.VOP1|flags.SDWA,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSDWASrc, 1, 32),
		fs(OpClamp), fs(OpOMod),
		fs(OpDstSel), fs(OpDstUnused), fs(OpSrc0Sel))
	def(V_ADD_F32_SDWA, "v_add_f32_sdwa", flags.VOP2|flags.SDWA,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSDWASrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSDWASrc, 1, 32),
		fs(OpClamp), fs(OpOMod),
		fs(OpDstSel), fs(OpDstUnused), fs(OpSrc0Sel), fs(OpSrc1Sel))
	def(V_ADD_F16_SDWA, "v_add_f16_sdwa", flags.VOP2|flags.SDWA,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSDWASrc16, 1, 16),
		fs(OpSrc1Mods), cs(OpSrc1, kSDWASrc16, 1, 16),
		fs(OpClamp), fs(OpOMod),
		fs(OpDstSel), fs(OpDstUnused), fs(OpSrc0Sel), fs(OpSrc1Sel))
	def(V_CMP_EQ_F32_SDWA, "v_cmp_eq_f32_sdwa", flags.VOPC|flags.SDWA,
		fs(OpSrc0Mods), cs(OpSrc0, kSDWASrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSDWASrc, 1, 32),
		rs(OpSDst, kSDWAVopcDst, 0), ns(OpClamp),
		fs(OpSrc0Sel), fs(OpSrc1Sel))

	def(V_MOV_B32_DPP, "v_mov_b32_dpp", flags.VOP1|flags.DPP,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), rs(OpSrc0, kVGPR, 1),
		fs(OpDPPCtrl), fs(OpRowMask), fs(OpBankMask), fs(OpBoundCtrl), fs(OpFI))
	def(V_ADD_F32_DPP, "v_add_f32_dpp", flags.VOP2|flags.DPP,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), rs(OpSrc0, kVGPR, 1),
		fs(OpSrc1Mods), rs(OpSrc1, kVGPR, 1),
		fs(OpDPPCtrl), fs(OpRowMask), fs(OpBankMask), fs(OpBoundCtrl), fs(OpFI))
	def(V_MAC_F32_DPP, "v_mac_f32_dpp", flags.VOP2|flags.DPP|flags.MAC,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), rs(OpSrc0, kVGPR, 1),
		fs(OpSrc1Mods), rs(OpSrc1, kVGPR, 1),
		ns(OpOld), ns(OpSrc2Mods),
		fs(OpDPPCtrl), fs(OpRowMask), fs(OpBankMask), fs(OpBoundCtrl))
	def(V_MOV_B32_DPP8, "v_mov_b32_dpp8", flags.VOP1|flags.DPP8,
		rs(OpVDst, kVGPR, 1), rs(OpSrc0, kVGPR, 1),
		fs(OpDPP8), slot{name: OpFI, kind: kFI})
	def(V_ADD_F32_DPP8, "v_add_f32_dpp8", flags.VOP2|flags.DPP8,
		rs(OpVDst, kVGPR, 1), rs(OpSrc0, kVGPR, 1), rs(OpSrc1, kVGPR, 1),
		fs(OpDPP8), slot{name: OpFI, kind: kFI})
	def(V_FMA_F32_DPP, "v_fma_f32_dpp", flags.VOP3|flags.DPP,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 32),
		fs(OpSrc2Mods), cs(OpSrc2, kSrc, 1, 32),
		fs(OpClamp), fs(OpOMod),
		fs(OpDPPCtrl), fs(OpRowMask), fs(OpBankMask), fs(OpBoundCtrl), fs(OpFI))
	def(V_FMA_F32_DPP8, "v_fma_f32_dpp8", flags.VOP3|flags.DPP8,
		rs(OpVDst, kVGPR, 1),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 32),
		fs(OpSrc2Mods), cs(OpSrc2, kSrc, 1, 32),
		fs(OpClamp), fs(OpOMod),
		fs(OpDPP8), slot{name: OpFI, kind: kFI})
	def(V_PK_ADD_F16_DPP8, "v_pk_add_f16_dpp8", flags.VOP3P|flags.DPP8,
		rs(OpVDst, kVGPR, 1), ns(OpVDstIn),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 16),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 16),
		ns(OpOpSel), ns(OpOpSelHi), ns(OpNegLo), ns(OpNegHi), fs(OpClamp),
		fs(OpDPP8), slot{name: OpFI, kind: kFI})
	def(V_CMP_EQ_F32_E64_DPP, "v_cmp_eq_f32_e64_dpp", flags.VOPC|flags.DPP,
		rs(OpSDst, kBool, 0),
		fs(OpSrc0Mods), cs(OpSrc0, kSrc, 1, 32),
		fs(OpSrc1Mods), cs(OpSrc1, kSrc, 1, 32),
		fs(OpDPPCtrl), fs(OpRowMask), fs(OpBankMask), fs(OpBoundCtrl), fs(OpFI))

	def(V_DUAL_MOV_B32_X_MOV_B32, "v_dual_mov_b32_x_mov_b32", flags.VOPD,
		rs(OpVDstX, kVGPR, 1), cs(OpSrc0X, kSrc, 1, 32),
		rs(OpVDstY, kVOPDDstY, 1), cs(OpSrc0Y, kSrc, 1, 32))
	def(V_DUAL_FMAMK_F32_X_FMAMK_F32, "v_dual_fmamk_f32_x_fmamk_f32", flags.VOPD|flags.KIMM,
		rs(OpVDstX, kVGPR, 1), cs(OpSrc0X, kSrcDeferred, 1, 32),
		slot{name: OpImmX, kind: kKImm}, rs(OpVSrc1X, kVGPR, 1),
		rs(OpVDstY, kVOPDDstY, 1), cs(OpSrc0Y, kSrcDeferred, 1, 32),
		slot{name: OpImmY, kind: kKImm}, rs(OpVSrc1Y, kVGPR, 1))

	def(S_LOAD_DWORD, "s_load_dword", flags.SMEM,
		rs(OpSData, kSGPR, 1), rs(OpSBase, kSGPR, 2),
		slot{name: OpOffset, kind: kSMEMOffset}, rs(OpSOffset, kSGPR, 1))
	def(S_LOAD_DWORDX2, "s_load_dwordx2", flags.SMEM,
		rs(OpSData, kSGPR, 2), rs(OpSBase, kSGPR, 2),
		slot{name: OpOffset, kind: kSMEMOffset}, rs(OpSOffset, kSGPR, 1))
	def(S_LOAD_DWORDX4, "s_load_dwordx4", flags.SMEM,
		rs(OpSData, kSGPR, 4), rs(OpSBase, kSGPR, 2),
		slot{name: OpOffset, kind: kSMEMOffset}, rs(OpSOffset, kSGPR, 1))

	def(DS_ADD_U32, "ds_add_u32", flags.DS,
		rs(OpAddr, kVGPR, 1), rs(OpData0, kAVLdSt, 1), fs(OpOffset), fs(OpGDS))
	def(DS_ADD_RTN_U32, "ds_add_rtn_u32", flags.DS|flags.ATOMIC_RET,
		rs(OpVDst, kAVLdSt, 1), rs(OpAddr, kVGPR, 1), rs(OpData0, kAVLdSt, 1),
		fs(OpOffset), fs(OpGDS))
	def(DS_WRITE_B32, "ds_write_b32", flags.DS,
		rs(OpAddr, kVGPR, 1), rs(OpData0, kAVLdSt, 1), fs(OpOffset), fs(OpGDS))
	def(DS_READ_B32, "ds_read_b32", flags.DS,
		rs(OpVDst, kAVLdSt, 1), rs(OpAddr, kVGPR, 1), fs(OpOffset), fs(OpGDS))
	def(DS_READ2_B32, "ds_read2_b32", flags.DS,
		rs(OpVDst, kAVLdSt, 2), rs(OpAddr, kVGPR, 1),
		fs(OpOffset0), fs(OpOffset1), fs(OpGDS))

	def(BUFFER_LOAD_DWORD, "buffer_load_dword", flags.MUBUF,
		rs(OpVData, kAVLdSt, 1), rs(OpVAddr0, kVGPR, 1), rs(OpSRsrc, kSGPR, 4),
		cs(OpSOffset, kSrc, 1, 32),
		fs(OpOffset), fs(OpOffEn), fs(OpIdxEn), fs(OpCPol), fs(OpTFE), fs(OpSWZ))
	def(BUFFER_STORE_DWORD, "buffer_store_dword", flags.MUBUF,
		rs(OpVData, kAVLdSt, 1), rs(OpVAddr0, kVGPR, 1), rs(OpSRsrc, kSGPR, 4),
		cs(OpSOffset, kSrc, 1, 32),
		fs(OpOffset), fs(OpOffEn), fs(OpIdxEn), fs(OpCPol), fs(OpTFE), fs(OpSWZ))
	def(BUFFER_ATOMIC_ADD, "buffer_atomic_add", flags.MUBUF|flags.ATOMIC_RET,
		rs(OpVData, kAVLdSt, 1), rs(OpVAddr0, kVGPR, 1), rs(OpSRsrc, kSGPR, 4),
		cs(OpSOffset, kSrc, 1, 32),
		fs(OpOffset), fs(OpOffEn), fs(OpIdxEn), fs(OpCPol), fs(OpSWZ))
	def(BUFFER_LOAD_FORMAT_D16_X, "buffer_load_format_d16_x", flags.MUBUF,
		rs(OpVData, kAVLdSt, 1), rs(OpVAddr0, kVGPR, 1), rs(OpSRsrc, kSGPR, 4),
		cs(OpSOffset, kSrc, 1, 32),
		fs(OpOffset), fs(OpOffEn), fs(OpIdxEn), fs(OpCPol), fs(OpTFE), fs(OpSWZ))

	def(FLAT_LOAD_DWORD, "flat_load_dword", flags.FLAT,
		rs(OpVDst, kAVLdSt, 1), rs(OpAddr, kVGPR, 2), fs(OpOffset), fs(OpCPol))
	def(GLOBAL_LOAD_DWORD, "global_load_dword", flags.FLAT,
		rs(OpVDst, kAVLdSt, 1), rs(OpAddr, kVGPR, 2), rs(OpSAddr, kSGPR, 2),
		fs(OpOffset), fs(OpCPol))
	def(GLOBAL_ATOMIC_ADD, "global_atomic_add", flags.FLAT|flags.ATOMIC_RET,
		rs(OpVDst, kAVLdSt, 1), rs(OpAddr, kVGPR, 2), rs(OpData0, kAVLdSt, 1),
		rs(OpSAddr, kSGPR, 2), fs(OpOffset), fs(OpCPol))

	def(EXPORT, "exp", flags.EXP,
		fs(OpTgt),
		rs(OpSrc0, kVGPR, 1), rs(OpSrc1, kVGPR, 1),
		rs(OpSrc2, kVGPR, 1), rs(OpSrc3, kVGPR, 1),
		fs(OpDone), fs(OpVM), fs(OpCompr), fs(OpEn))

	def(IMAGE_LOAD, "image_load", flags.MIMG, mimgSlots(IMAGE_LOAD, 1, 5, 1)...)
	def(IMAGE_SAMPLE, "image_sample", flags.MIMG, mimgSlots(IMAGE_SAMPLE, 1, 5, 1)...)
	def(IMAGE_GATHER4, "image_gather4", flags.MIMG|flags.GATHER4, mimgSlots(IMAGE_GATHER4, 1, 5, 1)...)
}

// mimgSlots builds the slot list for an image opcode with the given data
// width, address slot count, and width of the last address slot.
func mimgSlots(base Op, dataDw uint8, addrSlots int, lastDw uint8) []slot {
	s := make([]slot, 0, 16)
	s = append(s, rs(OpVData, kAVLdSt, dataDw))
	for i := 0; i < addrSlots; i++ {
		dw := uint8(1)
		if i == addrSlots-1 {
			dw = lastDw
		}
		s = append(s, rs(OpVAddr0+OpName(i), kVGPR, dw))
	}
	s = append(s, rs(OpSRsrc, kSGPR, 4))
	if base == IMAGE_SAMPLE || base == IMAGE_GATHER4 {
		s = append(s, rs(OpSSamp, kSGPR, 4))
	}
	s = append(s,
		fs(OpDMask), fs(OpDim), fs(OpUNorm), fs(OpCPol),
		fs(OpR128), fs(OpTFE), fs(OpLWE), fs(OpA16), fs(OpD16))
	return s
}

// Canonical image variants: (base, data dwords 1..6, address slots 1..4,
// last address width 1..4) -> appended opcode. Built once at init.
const mimgVariantCap = 3 * 6 * 4 * 4

var mimgVariants = make(map[uint32]Op, mimgVariantCap)

var mimgBases = [...]Op{IMAGE_LOAD, IMAGE_SAMPLE, IMAGE_GATHER4}

func mimgKey(base Op, dataDw uint8, addrSlots int, lastDw uint8) uint32 {
	return uint32(base)<<12 | uint32(dataDw)<<8 | uint32(addrSlots)<<4 | uint32(lastDw)
}

func init() {
	for _, base := range mimgBases {
		d := opdescs[base]
		for dataDw := uint8(1); dataDw <= 6; dataDw++ {
			for addrSlots := 1; addrSlots <= 4; addrSlots++ {
				for lastDw := uint8(1); lastDw <= 4; lastDw++ {
					op := Op(len(opdescs))
					opdescs = append(opdescs, opdesc{
						name:  d.name,
						flags: d.flags,
						slots: mimgSlots(base, dataDw, addrSlots, lastDw),
					})
					mimgVariants[mimgKey(base, dataDw, addrSlots, lastDw)] = op
				}
			}
		}
	}
}
