package gcn

import (
	"encoding/binary"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/gcndis/gcn/feats"
)

func words(ws ...uint32) []byte {
	b := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

func decode(t *testing.T, sub *Subtarget, ws ...uint32) (*Inst, int) {
	t.Helper()
	in, n, err := NewDecoder(sub).Decode(words(ws...), 0)
	if err != nil {
		t.Fatalf("decode %#x failed: %v", ws, err)
	}
	return in, n
}

func checkOps(t *testing.T, in *Inst, want ...Operand) {
	t.Helper()
	if diff := cmp.Diff(want, in.Operands); diff != "" {
		t.Fatalf("%s operands mismatch (-want +got):\n%s\ngot: %s",
			in.Op.Name(), diff, spew.Sdump(in.Operands))
	}
}

func checkOp(t *testing.T, in *Inst, n int, wantName string, wantN int) {
	t.Helper()
	if in.Op.Name() != wantName {
		t.Fatalf("decoded %s, want %s", in.Op.Name(), wantName)
	}
	if n != wantN {
		t.Fatalf("%s consumed %d bytes, want %d", wantName, n, wantN)
	}
}

func TestScalar32(t *testing.T) {
	gfx9 := NewSubtarget(feats.GFX9)

	in, n := decode(t, gfx9, 0xbf810000)
	checkOp(t, in, n, "s_endpgm", 4)
	checkOps(t, in, Imm{})

	in, n = decode(t, gfx9, 0x80000201) // s_add_u32 s0, s1, s2
	checkOp(t, in, n, "s_add_u32", 4)
	checkOps(t, in, SReg(1, 0), SReg(1, 1), SReg(1, 2))

	in, n = decode(t, gfx9, 0xbe84046a) // s_mov_b64 s[4:5], vcc
	checkOp(t, in, n, "s_mov_b64", 4)
	checkOps(t, in, SReg(2, 4), VCC)

	in, n = decode(t, gfx9, 0xb003fffe) // s_movk_i32 s3, -2
	checkOp(t, in, n, "s_movk_i32", 4)
	checkOps(t, in, SReg(1, 3), Imm{Val: -2, Width: 16})
}

func TestVector32(t *testing.T) {
	gfx9 := NewSubtarget(feats.GFX9)

	in, n := decode(t, gfx9, 0x7e020302) // v_mov_b32 v1, v2
	checkOp(t, in, n, "v_mov_b32", 4)
	checkOps(t, in, VReg(1, 1), VReg(1, 2))

	// inline float constants decode to their exact bit patterns
	in, _ = decode(t, gfx9, 0x7e0002f2) // v_mov_b32 v0, 1.0
	checkOps(t, in, VReg(1, 0), Imm{Val: 0x3f800000, Width: 32})

	in, _ = decode(t, gfx9, 0x7e0002c5) // v_mov_b32 v0, -5
	checkOps(t, in, VReg(1, 0), Imm{Val: -5, Width: 32})

	in, n = decode(t, gfx9, 0x7e0002ff, 0x12345678)
	checkOp(t, in, n, "v_mov_b32", 8)
	checkOps(t, in, VReg(1, 0), Imm{Val: 0x12345678, Width: 32})
}

func TestImplicitConditionMask(t *testing.T) {
	// v_cndmask_b32 v3, v2, v4, with the condition width following the
	// wavefront size
	in, _ := decode(t, NewSubtarget(feats.GFX9), 0x00060902)
	checkOps(t, in, VReg(1, 3), VReg(1, 2), VReg(1, 4), VCC)

	in, _ = decode(t, NewSubtarget(feats.GFX10), 0x00060902)
	checkOps(t, in, VReg(1, 3), VReg(1, 2), VReg(1, 4), VCC_LO)
}

func TestBranchSymbol(t *testing.T) {
	var syms SymbolTable
	syms.Define(0x100, "loop")

	d := NewDecoder(NewSubtarget(feats.GFX9))
	d.SetSymbolizer(&syms)

	in, _, err := d.Decode(words(0xbf82ffff), 0x100) // s_branch -1
	if err != nil {
		t.Fatal(err)
	}
	checkOps(t, in, Expr{Sym: "loop", Target: 0x100})

	refs := syms.Referenced()
	if len(refs) != 1 || refs[0] != 0x100 {
		t.Fatalf("referenced targets: %#x", refs)
	}
}

func TestDPP8Sentinel(t *testing.T) {
	gfx10 := NewSubtarget(feats.GFX10)

	// src0 holds the sentinel, so the 8-byte form wins
	in, n := decode(t, gfx10, 0x7e0a02e9, 0x00000001)
	checkOp(t, in, n, "v_mov_b32_dpp8", 8)
	checkOps(t, in, VReg(1, 5), VReg(1, 1), Imm{}, Imm{})

	// the second sentinel flips the fetch-invalid selector
	in, _ = decode(t, gfx10, 0x7e0a02ea, 0x00000001)
	checkOps(t, in, VReg(1, 5), VReg(1, 1), Imm{}, Imm{Val: 1})

	// a plain register source falls through to the 4-byte form
	in, n = decode(t, gfx10, 0x7e0a0302)
	checkOp(t, in, n, "v_mov_b32", 4)
	checkOps(t, in, VReg(1, 5), VReg(1, 2))
}

func TestSDWA(t *testing.T) {
	gfx9 := NewSubtarget(feats.GFX9)

	in, n := decode(t, gfx9, 0x7e0602f9, 0x00000002) // v_mov_b32_sdwa v3, v2
	checkOp(t, in, n, "v_mov_b32_sdwa", 8)
	checkOps(t, in, VReg(1, 3), Imm{}, VReg(1, 2), Imm{}, Imm{}, Imm{}, Imm{}, Imm{})

	// bit 8 redirects the source to the scalar space
	in, _ = decode(t, gfx9, 0x7e0602f9, 0x00800002)
	checkOps(t, in, VReg(1, 3), Imm{}, SReg(1, 2), Imm{}, Imm{}, Imm{}, Imm{}, Imm{})

	// compare form with an explicit scalar destination
	in, _ = decode(t, gfx9, 0x7c8404f9, 0x00006a01)
	checkOp(t, in, 8, "v_cmp_eq_f32_sdwa", 8)
	checkOps(t, in, Imm{}, VReg(1, 1), Imm{}, VReg(1, 2), SReg(2, 42),
		Imm{}, Imm{}, Imm{})

	// 16-bit sources draw from the 16-bit inline constant file
	in, _ = decode(t, gfx9, 0x3e0604f9, 0x008000f2)
	checkOp(t, in, 8, "v_add_f16_sdwa", 8)
	checkOps(t, in, VReg(1, 3), Imm{}, Imm{Val: 0x3c00, Width: 16},
		Imm{}, VReg(1, 2), Imm{}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{})
}

func TestMFMA(t *testing.T) {
	gfx90a := NewSubtarget(feats.GFX9, feats.GFX90A_INSTS)

	// v_mfma_f32_4x4x1f32 a[0:3], v1, a2, a[4:7]; the repurposed
	// output-modifier bits pick the accumulator bank per source
	in, n := decode(t, gfx90a, 0xd3c20000, 0x10100501)
	checkOp(t, in, n, "v_mfma_f32_4x4x1f32", 8)
	checkOps(t, in, AReg(4, 0), VReg(1, 1), AReg(1, 2), AReg(4, 4))
}

func TestDPP16(t *testing.T) {
	in, n := decode(t, NewSubtarget(feats.GFX8), 0x020204fa, 0xff090103)
	checkOp(t, in, n, "v_add_f32_dpp", 8)
	checkOps(t, in, VReg(1, 1), Imm{}, VReg(1, 3), Imm{}, VReg(1, 2),
		Imm{Val: 0x101}, Imm{Val: 0xf}, Imm{Val: 0xf}, Imm{Val: 1})
}

func TestVOP3(t *testing.T) {
	gfx9 := NewSubtarget(feats.GFX9)

	// v_fma_f32 v1, -v0, |v1|, 1.0 clamp mul:2
	in, n := decode(t, gfx9, 0xd1cb8201, 0x2bca0300)
	checkOp(t, in, n, "v_fma_f32", 8)
	checkOps(t, in, VReg(1, 1),
		Imm{Val: srcModNeg}, VReg(1, 0),
		Imm{Val: srcModAbs}, VReg(1, 1),
		Imm{}, Imm{Val: 0x3f800000, Width: 32},
		Imm{Val: 1}, Imm{Val: 1})

	// carry-style second destination
	in, _ = decode(t, gfx9, 0xd1e86a04, 0x000a0300)
	checkOp(t, in, 8, "v_mad_u64_u32", 8)
	checkOps(t, in, VReg(2, 4), VCC, VReg(1, 0), VReg(1, 1), SReg(2, 2), Imm{})
}

func TestVOP3FP64(t *testing.T) {
	// a 64-bit float literal carries only its high word
	in, n := decode(t, NewSubtarget(feats.GFX8), 0xd2800002, 0x0001e4ff, 0x40091eb8)
	checkOp(t, in, n, "v_add_f64", 12)
	checkOps(t, in, VReg(2, 2),
		Imm{}, Imm{Val: 0x40091eb8 << 32, Width: 64},
		Imm{}, Imm{Val: 0x3ff0000000000000, Width: 64},
		Imm{}, Imm{})
}

func TestVOP3P(t *testing.T) {
	in, n := decode(t, NewSubtarget(feats.GFX9), 0xd3805100, 0x58020300)
	checkOp(t, in, n, "v_pk_add_f16", 8)
	checkOps(t, in, VReg(1, 0),
		Imm{Val: srcModAbs | srcModOpSel1}, VReg(1, 0),
		Imm{Val: srcModNeg | srcModOpSel0 | srcModOpSel1}, VReg(1, 1),
		Imm{Val: 2}, Imm{Val: 7}, Imm{Val: 2}, Imm{Val: 1}, Imm{})
}

func TestSMEM(t *testing.T) {
	gfx9 := NewSubtarget(feats.GFX9)

	in, n := decode(t, gfx9, 0xc0000100, 0x00000010) // s_load_dword s4, s[0:1], 0x10
	checkOp(t, in, n, "s_load_dword", 8)
	checkOps(t, in, SReg(1, 4), SReg(2, 0), Imm{Val: 16})

	// 21-bit signed offset
	in, _ = decode(t, gfx9, 0xc0000100, 0x001fffff)
	checkOps(t, in, SReg(1, 4), SReg(2, 0), Imm{Val: -1})

	// 20-bit unsigned offset
	in, _ = decode(t, NewSubtarget(feats.GFX8), 0xc0000100, 0x000fffff)
	checkOps(t, in, SReg(1, 4), SReg(2, 0), Imm{Val: 0xfffff})

	// gfx10 adds a scalar offset register
	in, _ = decode(t, NewSubtarget(feats.GFX10), 0xf4000100, 0x00000010)
	checkOp(t, in, 8, "s_load_dword", 8)
	checkOps(t, in, SReg(1, 4), SReg(2, 0), Imm{Val: 16}, SReg(1, 0))
}

func TestDS(t *testing.T) {
	in, n := decode(t, NewSubtarget(feats.GFX9), 0xd8000004, 0x00000201)
	checkOp(t, in, n, "ds_add_u32", 8)
	checkOps(t, in, VReg(1, 1), VReg(1, 2), Imm{Val: 4}, Imm{})

	// no global data share: the operand is still present, pinned to zero
	in, _ = decode(t, NewSubtarget(feats.GFX11), 0xd8000004, 0x00000201)
	checkOps(t, in, VReg(1, 1), VReg(1, 2), Imm{Val: 4}, Imm{})

	in, _ = decode(t, NewSubtarget(feats.GFX9), 0xd8dc0201, 0x06000004)
	checkOp(t, in, 8, "ds_read2_b32", 8)
	checkOps(t, in, VReg(2, 6), VReg(1, 4), Imm{Val: 1}, Imm{Val: 2}, Imm{})
}

func TestMUBUF(t *testing.T) {
	in, n := decode(t, NewSubtarget(feats.GFX9), 0xe0505008, 0x00010301)
	checkOp(t, in, n, "buffer_load_dword", 8)
	checkOps(t, in, VReg(1, 3), VReg(1, 1), SReg(4, 4), SReg(1, 0),
		Imm{Val: 8}, Imm{Val: 1}, Imm{}, Imm{Val: cpolGLC}, Imm{}, Imm{})

	// the sample-fail bit selects the accumulator bank
	gfx90a := NewSubtarget(feats.GFX9, feats.GFX90A_INSTS)
	in, _ = decode(t, gfx90a, 0xe0500000, 0x80810301)
	checkOps(t, in, AReg(1, 3), VReg(1, 1), SReg(4, 4), Imm{Width: 32},
		Imm{}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{})

	// returning atomics always read back coherent
	in, _ = decode(t, NewSubtarget(feats.GFX9), 0xe1080000, 0x80010201)
	checkOp(t, in, 8, "buffer_atomic_add", 8)
	checkOps(t, in, VReg(1, 2), VReg(1, 1), SReg(4, 4), Imm{Width: 32},
		Imm{}, Imm{}, Imm{}, Imm{Val: cpolGLC}, Imm{})
}

func TestFlat(t *testing.T) {
	gfx9 := NewSubtarget(feats.GFX9)

	in, n := decode(t, gfx9, 0xdc508000, 0x01040002)
	checkOp(t, in, n, "global_load_dword", 8)
	checkOps(t, in, VReg(1, 1), VReg(2, 2), SReg(2, 4), Imm{}, Imm{})

	// 0x7f in the scalar address field means "off"
	in, _ = decode(t, gfx9, 0xdc508000, 0x017f0002)
	checkOps(t, in, VReg(1, 1), VReg(2, 2), Imm{}, Imm{})
}

func TestMIMG(t *testing.T) {
	// dmask 0x3 widens the data group to two registers
	in, n := decode(t, NewSubtarget(feats.GFX9), 0xf0800300, 0x00410804)
	checkOp(t, in, n, "image_sample", 8)
	checkOps(t, in, VReg(2, 8), VReg(1, 4), SReg(4, 4), SReg(4, 8),
		Imm{Val: 3}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{})
}

func TestMIMGCanonicalStable(t *testing.T) {
	// dmask 0x1 already matches the base shape
	sub := NewSubtarget(feats.GFX9)
	in, n := decode(t, sub, 0xf0800100, 0x00410804)
	checkOp(t, in, n, "image_sample", 8)
	checkOps(t, in, VReg(1, 8), VReg(1, 4), SReg(4, 4), SReg(4, 8),
		Imm{Val: 1}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{})

	// rerunning the canonicalization must not rewrite the opcode or
	// reshape the operands
	op, want := in.Op, append([]Operand(nil), in.Operands...)
	s := newSession(sub)
	s.convertMIMG(in)
	if in.Op != op {
		t.Fatalf("opcode rewritten: %s", in.Op.Name())
	}
	checkOps(t, in, want...)
}

func TestMIMGNSA(t *testing.T) {
	// 2D sample with one extra address word
	in, n := decode(t, NewSubtarget(feats.GFX10), 0xf080010a, 0x00410804, 0x00000005)
	checkOp(t, in, n, "image_sample", 12)
	checkOps(t, in, VReg(1, 8), VReg(1, 4), VReg(1, 5), SReg(4, 4), SReg(4, 8),
		Imm{Val: 1}, Imm{Val: 1}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{}, Imm{})
}

func TestVOPD(t *testing.T) {
	gfx11 := NewSubtarget(feats.GFX11)

	// the second destination's low bit complements the first's
	in, n := decode(t, gfx11, 0xc8000101, 0x02020102)
	checkOp(t, in, n, "v_dual_mov_b32_x_mov_b32", 8)
	checkOps(t, in, VReg(1, 2), VReg(1, 1), VReg(1, 3), VReg(1, 2))

	// both halves share the single trailing literal
	in, n = decode(t, gfx11, 0xc8840500, 0x04040701, 0x3f800000)
	checkOp(t, in, n, "v_dual_fmamk_f32_x_fmamk_f32", 12)
	checkOps(t, in, VReg(1, 4), VReg(1, 0), Imm{Val: 0x3f800000, Width: 32}, VReg(1, 2),
		VReg(1, 5), VReg(1, 1), Imm{Val: 0x3f800000, Width: 32}, VReg(1, 3))
}

func Test96BitLiteral(t *testing.T) {
	gfx11 := NewSubtarget(feats.GFX11)

	// a literal source stretches the three-address form to twelve bytes
	in, n := decode(t, gfx11, 0xd6130001, 0x040a02ff, 0xdeadbeef)
	checkOp(t, in, n, "v_fma_f32", 12)
	checkOps(t, in, VReg(1, 1),
		Imm{}, Imm{Val: 0xdeadbeef, Width: 32},
		Imm{}, VReg(1, 1),
		Imm{}, VReg(1, 2),
		Imm{}, Imm{})

	// without one it stays an 8-byte form
	in, n = decode(t, gfx11, 0xd6130001, 0x040a0300)
	checkOp(t, in, n, "v_fma_f32", 8)
}

func TestVOP3DPP(t *testing.T) {
	in, n := decode(t, NewSubtarget(feats.GFX11), 0xd6130006, 0x040a02fa, 0xa5010003)
	checkOp(t, in, n, "v_fma_f32_dpp", 12)
	checkOps(t, in, VReg(1, 6),
		Imm{}, VReg(1, 3),
		Imm{}, VReg(1, 1),
		Imm{}, VReg(1, 2),
		Imm{}, Imm{},
		Imm{Val: 0x100}, Imm{Val: 0xa}, Imm{Val: 5}, Imm{}, Imm{})
}

func TestLiteralBroadcast(t *testing.T) {
	// the deferred source and the mandatory literal are the same constant
	in, _ := decode(t, NewSubtarget(feats.GFX10), 0x580204ff, 0x40490fdb)
	checkOp(t, in, 8, "v_fmamk_f32", 8)
	checkOps(t, in, VReg(1, 1),
		Imm{Val: 0x40490fdb, Width: 32},
		Imm{Val: 0x40490fdb, Width: 32},
		VReg(1, 2))
}

func TestExport(t *testing.T) {
	in, n := decode(t, NewSubtarget(feats.GFX9), 0xc4001ccf, 0x04030201)
	checkOp(t, in, n, "exp", 8)
	checkOps(t, in, Imm{Val: 12},
		VReg(1, 1), VReg(1, 2), VReg(1, 3), VReg(1, 4),
		Imm{Val: 1}, Imm{Val: 1}, Imm{Val: 1}, Imm{Val: 0xf})

	// the compressed and valid-mask bits left the encoding at gfx11
	in, _ = decode(t, NewSubtarget(feats.GFX11), 0xf80008cf, 0x04030201)
	checkOp(t, in, 8, "exp", 8)
	checkOps(t, in, Imm{Val: 12},
		VReg(1, 1), VReg(1, 2), VReg(1, 3), VReg(1, 4),
		Imm{Val: 1}, Imm{}, Imm{}, Imm{Val: 0xf})
}

func TestDecodeErrors(t *testing.T) {
	d := NewDecoder(NewSubtarget(feats.GFX10))

	if _, n, err := d.Decode([]byte{0, 0, 0}, 0); err != ErrTruncated || n != 3 {
		t.Fatalf("short buffer: n=%d err=%v", n, err)
	}

	// literal source with no trailing word
	if _, n, err := d.Decode(words(0x7e0002ff), 0); err != ErrTruncated || n != 4 {
		t.Fatalf("missing literal: n=%d err=%v", n, err)
	}

	if _, n, err := d.Decode(words(0xffffffff), 0); err != ErrNoMatch || n != 4 {
		t.Fatalf("garbage word: n=%d err=%v", n, err)
	}
}
