package gcn

import (
	"encoding/binary"
	"fmt"

	"github.com/gcndis/gcn/feats"
)

// KernelDescriptorSize is the size of an HSA kernel descriptor record.
const KernelDescriptorSize = 64

// Directive is one assembler directive recovered from a kernel descriptor.
// Comment marks fields the assembler cannot round-trip; they are emitted for
// information only.
type Directive struct {
	Name    string
	Val     uint64
	Comment bool
}

func (dir Directive) String() string {
	if dir.Comment {
		return fmt.Sprintf("; %s %d", dir.Name, dir.Val)
	}
	return fmt.Sprintf("%s %d", dir.Name, dir.Val)
}

// kdError reports a kernel descriptor field that cannot hold the value it
// does on the decoder's subtarget.
func kdError(field string) error {
	return fmt.Errorf("gcn: kernel descriptor: invalid %s", field)
}

// DecodeKernelDescriptor decodes a 64-byte kernel descriptor record into the
// assembler directives that reproduce it. On an invalid record it returns
// the directives recovered so far along with the error.
func (d *Decoder) DecodeKernelDescriptor(b []byte) ([]Directive, error) {
	if len(b) < KernelDescriptorSize {
		return nil, ErrTruncated
	}
	k := kdSession{sub: d.sub}

	// the vgpr granule depends on the wavefront size flag further down the
	// record, so read it first
	props := binary.LittleEndian.Uint16(b[56:])
	k.wave32 = props>>9&1 != 0

	k.u32(b[0:], ".amdhsa_group_segment_fixed_size")
	k.u32(b[4:], ".amdhsa_private_segment_fixed_size")
	k.u32(b[8:], ".amdhsa_kernarg_size")
	if err := k.reserved(b[12:16], "reserved bytes at offset 12"); err != nil {
		return k.dirs, err
	}
	// 8-byte entry point offset at 16 is relocated by the loader
	if err := k.reserved(b[24:44], "reserved bytes at offset 24"); err != nil {
		return k.dirs, err
	}
	if err := k.rsrc3(binary.LittleEndian.Uint32(b[44:])); err != nil {
		return k.dirs, err
	}
	if err := k.rsrc1(binary.LittleEndian.Uint32(b[48:])); err != nil {
		return k.dirs, err
	}
	if err := k.rsrc2(binary.LittleEndian.Uint32(b[52:])); err != nil {
		return k.dirs, err
	}
	if err := k.codeProps(props); err != nil {
		return k.dirs, err
	}
	if err := k.kernargPreload(binary.LittleEndian.Uint16(b[58:])); err != nil {
		return k.dirs, err
	}
	if err := k.reserved(b[60:64], "reserved bytes at offset 60"); err != nil {
		return k.dirs, err
	}
	return k.dirs, nil
}

type kdSession struct {
	sub    *Subtarget
	wave32 bool
	dirs   []Directive
}

func (k *kdSession) emit(name string, val uint64) {
	k.dirs = append(k.dirs, Directive{Name: name, Val: val})
}

func (k *kdSession) comment(name string, val uint64) {
	k.dirs = append(k.dirs, Directive{Name: name, Val: val, Comment: true})
}

func (k *kdSession) u32(b []byte, name string) {
	k.emit(name, uint64(binary.LittleEndian.Uint32(b)))
}

func (k *kdSession) reserved(b []byte, field string) error {
	for _, v := range b {
		if v != 0 {
			return kdError(field)
		}
	}
	return nil
}

// bit emits a single-bit directive and clears it from *v.
func (k *kdSession) bit(v *uint32, pos uint, name string) {
	k.emit(name, uint64(*v>>pos&1))
	*v &^= 1 << pos
}

// field emits a multi-bit directive for bits [hi:lo] and clears them.
func (k *kdSession) field(v *uint32, lo, hi uint, name string) uint64 {
	width := hi - lo + 1
	mask := uint32(1)<<width - 1
	val := uint64(*v >> lo & mask)
	k.emit(name, val)
	*v &^= mask << lo
	return val
}

func (k *kdSession) rsrc3(v uint32) error {
	gen := k.sub.Gen()
	switch {
	case k.sub.Has(feats.GFX90A_INSTS):
		acc := v & 0x3f
		k.emit(".amdhsa_accum_offset", uint64(acc+1)*4)
		v &^= 0x3f
		k.bit(&v, 16, ".amdhsa_tg_split")
	case gen == feats.GFX10 || gen == feats.GFX11:
		k.field(&v, 0, 3, ".amdhsa_shared_vgpr_count")
		if gen == feats.GFX11 {
			k.field(&v, 4, 7, ".amdhsa_inst_pref_size")
		}
	case gen == feats.GFX12:
		val := uint64(v & 0xff)
		k.comment(".amdhsa_inst_pref_size", val)
		v &^= 0xff
		k.comment(".amdhsa_glg_en", uint64(v>>13&1))
		v &^= 1 << 13
		k.comment(".amdhsa_image_op", uint64(v>>31&1))
		v &^= 1 << 31
	}
	if v != 0 {
		return kdError("compute_pgm_rsrc3")
	}
	return nil
}

func (k *kdSession) rsrc1(v uint32) error {
	gen := k.sub.Gen()

	granule := uint64(4)
	if k.sub.Has(feats.GFX90A_INSTS) || (gen >= feats.GFX10 && k.wave32) {
		granule = 8
	}
	k.emit(".amdhsa_next_free_vgpr", uint64(v&0x3f+1)*granule)
	v &^= 0x3f

	if gen >= feats.GFX10 {
		if v>>6&0xf != 0 {
			return kdError("granulated_sgpr_count")
		}
	} else {
		// inverse of an 8-sgpr granule; the exact count is not recoverable
		k.emit(".amdhsa_next_free_sgpr", uint64(v>>6&0xf+1)*8)
	}
	v &^= 0xf << 6

	if v>>10&3 != 0 {
		return kdError("priority")
	}
	k.field(&v, 12, 13, ".amdhsa_float_round_mode_32")
	k.field(&v, 14, 15, ".amdhsa_float_round_mode_16_64")
	k.field(&v, 16, 17, ".amdhsa_float_denorm_mode_32")
	k.field(&v, 18, 19, ".amdhsa_float_denorm_mode_16_64")
	if v>>20&1 != 0 {
		return kdError("priv")
	}
	if gen >= feats.GFX12 {
		k.bit(&v, 21, ".amdhsa_round_robin_scheduling")
	} else {
		k.bit(&v, 21, ".amdhsa_dx10_clamp")
	}
	if v>>22&1 != 0 {
		return kdError("debug_mode")
	}
	if gen < feats.GFX12 {
		k.bit(&v, 23, ".amdhsa_ieee_mode")
	}
	if v>>24&1 != 0 {
		return kdError("bulky")
	}
	if v>>25&1 != 0 {
		return kdError("cdbg_user")
	}
	if gen >= feats.GFX9 {
		k.bit(&v, 26, ".amdhsa_fp16_overflow")
	}
	if gen >= feats.GFX10 {
		k.bit(&v, 29, ".amdhsa_workgroup_processor_mode")
		k.bit(&v, 30, ".amdhsa_memory_ordered")
		k.bit(&v, 31, ".amdhsa_forward_progress")
	}
	if v != 0 {
		return kdError("compute_pgm_rsrc1")
	}
	return nil
}

func (k *kdSession) rsrc2(v uint32) error {
	if k.sub.Has(feats.ARCHITECTED_FLAT_SCRATCH) {
		k.bit(&v, 0, ".amdhsa_enable_private_segment")
	} else {
		k.bit(&v, 0, ".amdhsa_system_sgpr_private_segment_wavefront_offset")
	}
	k.field(&v, 1, 5, ".amdhsa_user_sgpr_count")
	if v>>6&1 != 0 {
		return kdError("enable_trap_handler")
	}
	k.bit(&v, 7, ".amdhsa_system_sgpr_workgroup_id_x")
	k.bit(&v, 8, ".amdhsa_system_sgpr_workgroup_id_y")
	k.bit(&v, 9, ".amdhsa_system_sgpr_workgroup_id_z")
	k.bit(&v, 10, ".amdhsa_system_sgpr_workgroup_info")
	k.field(&v, 11, 12, ".amdhsa_system_vgpr_workitem_id")
	if v>>13&1 != 0 {
		return kdError("exception_address_watch")
	}
	if v>>14&1 != 0 {
		return kdError("exception_memory")
	}
	if v>>15&0x1ff != 0 {
		return kdError("granulated_lds_size")
	}
	k.bit(&v, 24, ".amdhsa_exception_fp_ieee_invalid_op")
	k.bit(&v, 25, ".amdhsa_exception_fp_denorm_src")
	k.bit(&v, 26, ".amdhsa_exception_fp_ieee_div_zero")
	k.bit(&v, 27, ".amdhsa_exception_fp_ieee_overflow")
	k.bit(&v, 28, ".amdhsa_exception_fp_ieee_underflow")
	k.bit(&v, 29, ".amdhsa_exception_fp_ieee_inexact")
	k.bit(&v, 30, ".amdhsa_exception_int_div_zero")
	if v != 0 {
		return kdError("compute_pgm_rsrc2")
	}
	return nil
}

func (k *kdSession) codeProps(props uint16) error {
	v := uint32(props)
	k.bit(&v, 0, ".amdhsa_user_sgpr_private_segment_buffer")
	k.bit(&v, 1, ".amdhsa_user_sgpr_dispatch_ptr")
	k.bit(&v, 2, ".amdhsa_user_sgpr_queue_ptr")
	k.bit(&v, 3, ".amdhsa_user_sgpr_kernarg_segment_ptr")
	k.bit(&v, 4, ".amdhsa_user_sgpr_dispatch_id")
	if k.sub.Has(feats.ARCHITECTED_FLAT_SCRATCH) {
		if v>>5&1 != 0 {
			return kdError("enable_sgpr_flat_scratch_init")
		}
	} else {
		k.bit(&v, 5, ".amdhsa_user_sgpr_flat_scratch_init")
	}
	k.bit(&v, 6, ".amdhsa_user_sgpr_private_segment_size")
	if v>>7&3 != 0 {
		return kdError("kernel_code_properties")
	}
	if k.sub.Gen() >= feats.GFX10 {
		k.bit(&v, 9, ".amdhsa_wavefront_size32")
	} else if v>>9&1 != 0 {
		return kdError("wavefront_size32")
	}
	k.bit(&v, 10, ".amdhsa_uses_dynamic_stack")
	if v&0xf800 != 0 {
		return kdError("kernel_code_properties")
	}
	return nil
}

func (k *kdSession) kernargPreload(v uint16) error {
	if !k.sub.Has(feats.KERNARG_PRELOAD) {
		if v != 0 {
			return kdError("kernarg_preload")
		}
		return nil
	}
	if v>>15 != 0 {
		return kdError("kernarg_preload")
	}
	if v&0x3f != 0 {
		k.emit(".amdhsa_user_sgpr_kernarg_preload_length", uint64(v&0x3f))
		k.emit(".amdhsa_user_sgpr_kernarg_preload_offset", uint64(v>>6&0x1ff))
	}
	return nil
}
