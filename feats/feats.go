package feats

// Gen identifies a hardware generation. Values are ordered, so generations
// compare directly (g >= GFX9).
type Gen uint8

// Hardware generations
const (
	GFX8  Gen = 8
	GFX9  Gen = 9
	GFX10 Gen = 10
	GFX11 Gen = 11
	GFX12 Gen = 12
)

func (g Gen) String() string { return genNames[g] }

var genNames = map[Gen]string{
	GFX8:  "gfx8",
	GFX9:  "gfx9",
	GFX10: "gfx10",
	GFX11: "gfx11",
	GFX12: "gfx12",
}

type Feature uint32

// Subtarget features
const (
	NONE   Feature = 0
	WAVE32 Feature = 1 << iota // 32-wide wavefronts (64-wide when unset)
	GDS                        // global data share is present
	GFX90A_INSTS               // accumulator operands on vector memory data
	GFX940_INSTS
	GFX10_B_ENCODING  // gfx10 alternate encoding family
	UNPACKED_D16_VMEM // unpacked d16 vector memory instructions
	FMA_MIX_INSTS     // mad_mix opcode values repurposed as fma_mix
	NSA_ENCODING      // non-sequential-address image instructions
	PARTIAL_NSA_ENCODING
	PACKED_D16_VMEM
	G16
	ARCHITECTED_FLAT_SCRATCH
	KERNARG_PRELOAD
)

const AllFeatures Feature = 0xffffffff

func FeatName(f Feature) string { return featNames[f] }

var featNames = map[Feature]string{
	NONE:                     "NONE",
	WAVE32:                   "WAVE32",
	GDS:                      "GDS",
	GFX90A_INSTS:             "GFX90A_INSTS",
	GFX940_INSTS:             "GFX940_INSTS",
	GFX10_B_ENCODING:         "GFX10_B_ENCODING",
	UNPACKED_D16_VMEM:        "UNPACKED_D16_VMEM",
	FMA_MIX_INSTS:            "FMA_MIX_INSTS",
	NSA_ENCODING:             "NSA_ENCODING",
	PARTIAL_NSA_ENCODING:     "PARTIAL_NSA_ENCODING",
	PACKED_D16_VMEM:          "PACKED_D16_VMEM",
	G16:                      "G16",
	ARCHITECTED_FLAT_SCRATCH: "ARCHITECTED_FLAT_SCRATCH",
	KERNARG_PRELOAD:          "KERNARG_PRELOAD",
}

// Defaults returns the features enabled by default for a generation.
// Subtarget-specific features (GFX90A_INSTS, UNPACKED_D16_VMEM, ...) are
// enabled on top of these by the caller.
func Defaults(g Gen) Feature {
	switch g {
	case GFX8:
		return GDS
	case GFX9:
		return GDS | PACKED_D16_VMEM
	case GFX10:
		return GDS | WAVE32 | NSA_ENCODING | PACKED_D16_VMEM | G16
	case GFX11:
		return WAVE32 | NSA_ENCODING | PARTIAL_NSA_ENCODING | PACKED_D16_VMEM | G16 | KERNARG_PRELOAD
	case GFX12:
		return WAVE32 | NSA_ENCODING | PARTIAL_NSA_ENCODING | PACKED_D16_VMEM | G16 | KERNARG_PRELOAD | ARCHITECTED_FLAT_SCRATCH
	}
	return NONE
}
