package gcn

import (
	"encoding/binary"
	"testing"

	"github.com/gcndis/gcn/feats"
)

type kdRecord struct {
	group, private, kernarg uint32
	rsrc3, rsrc1, rsrc2     uint32
	props, preload          uint16
}

func (r kdRecord) bytes() []byte {
	b := make([]byte, KernelDescriptorSize)
	binary.LittleEndian.PutUint32(b[0:], r.group)
	binary.LittleEndian.PutUint32(b[4:], r.private)
	binary.LittleEndian.PutUint32(b[8:], r.kernarg)
	binary.LittleEndian.PutUint32(b[44:], r.rsrc3)
	binary.LittleEndian.PutUint32(b[48:], r.rsrc1)
	binary.LittleEndian.PutUint32(b[52:], r.rsrc2)
	binary.LittleEndian.PutUint16(b[56:], r.props)
	binary.LittleEndian.PutUint16(b[58:], r.preload)
	return b
}

func findDirective(t *testing.T, dirs []Directive, name string) uint64 {
	t.Helper()
	for _, d := range dirs {
		if d.Name == name {
			return d.Val
		}
	}
	t.Fatalf("directive %s not emitted", name)
	return 0
}

func TestKernelDescriptor(t *testing.T) {
	d := NewDecoder(NewSubtarget(feats.GFX9))

	rec := kdRecord{
		group:   256,
		kernarg: 64,
		rsrc1:   1<<21 | 1<<23, // dx10_clamp, ieee_mode
		rsrc2:   2<<1 | 1<<7,   // user_sgpr_count 2, workgroup_id_x
		props:   1 << 3,        // kernarg_segment_ptr
	}
	dirs, err := d.DecodeKernelDescriptor(rec.bytes())
	if err != nil {
		t.Fatal(err)
	}

	checks := map[string]uint64{
		".amdhsa_group_segment_fixed_size":      256,
		".amdhsa_kernarg_size":                  64,
		".amdhsa_next_free_vgpr":                4,
		".amdhsa_next_free_sgpr":                8,
		".amdhsa_dx10_clamp":                    1,
		".amdhsa_ieee_mode":                     1,
		".amdhsa_user_sgpr_count":               2,
		".amdhsa_system_sgpr_workgroup_id_x":    1,
		".amdhsa_user_sgpr_kernarg_segment_ptr": 1,
	}
	for name, want := range checks {
		if got := findDirective(t, dirs, name); got != want {
			t.Fatalf("%s = %d, want %d", name, got, want)
		}
	}
}

func TestKernelDescriptorVGPRGranule(t *testing.T) {
	// the wavefront-size flag doubles the vector register granule
	d := NewDecoder(NewSubtarget(feats.GFX10))
	rec := kdRecord{
		rsrc1: 1 | 1<<21 | 1<<23,
		props: 1 << 9, // wavefront_size32
	}
	dirs, err := d.DecodeKernelDescriptor(rec.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got := findDirective(t, dirs, ".amdhsa_next_free_vgpr"); got != 16 {
		t.Fatalf("next_free_vgpr = %d, want 16", got)
	}
	if got := findDirective(t, dirs, ".amdhsa_wavefront_size32"); got != 1 {
		t.Fatalf("wavefront_size32 = %d, want 1", got)
	}

	rec.props = 0
	dirs, err = d.DecodeKernelDescriptor(rec.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got := findDirective(t, dirs, ".amdhsa_next_free_vgpr"); got != 8 {
		t.Fatalf("wave64 next_free_vgpr = %d, want 8", got)
	}
}

func TestKernelDescriptorInvalid(t *testing.T) {
	d := NewDecoder(NewSubtarget(feats.GFX9))

	// reserved bytes must be zero
	b := kdRecord{}.bytes()
	b[12] = 1
	if _, err := d.DecodeKernelDescriptor(b); err == nil {
		t.Fatal("reserved byte accepted")
	}

	// the trap handler bit is not expressible as a directive
	rec := kdRecord{rsrc2: 1 << 6}
	if _, err := d.DecodeKernelDescriptor(rec.bytes()); err == nil {
		t.Fatal("trap handler bit accepted")
	}

	// wave32 is meaningless before gfx10
	rec = kdRecord{props: 1 << 9}
	if _, err := d.DecodeKernelDescriptor(rec.bytes()); err == nil {
		t.Fatal("gfx9 wave32 bit accepted")
	}

	// granulated sgpr count must be zero on gfx10
	d10 := NewDecoder(NewSubtarget(feats.GFX10))
	rec = kdRecord{rsrc1: 1 << 6}
	if _, err := d10.DecodeKernelDescriptor(rec.bytes()); err == nil {
		t.Fatal("gfx10 sgpr granule accepted")
	}

	if _, err := d.DecodeKernelDescriptor(make([]byte, 32)); err != ErrTruncated {
		t.Fatalf("short record: %v", err)
	}
}

func TestKernelDescriptorRsrc3(t *testing.T) {
	// gfx90a repurposes rsrc3 for the accumulator offset
	d := NewDecoder(NewSubtarget(feats.GFX9, feats.GFX90A_INSTS))
	rec := kdRecord{rsrc3: 15} // accum_offset granule 15 -> 64 registers
	dirs, err := d.DecodeKernelDescriptor(rec.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got := findDirective(t, dirs, ".amdhsa_accum_offset"); got != 64 {
		t.Fatalf("accum_offset = %d, want 64", got)
	}

	// other generations must leave it clear
	d9 := NewDecoder(NewSubtarget(feats.GFX9))
	if _, err := d9.DecodeKernelDescriptor(rec.bytes()); err == nil {
		t.Fatal("gfx9 rsrc3 bits accepted")
	}
}
