package gcnflags

// Encoding-class flags
const (
	DEFAULT uint32 = 0         // no class-specific handling
	SOP1    uint32 = 1 << iota // scalar, one source
	SOP2                       // scalar, two sources
	SOPC                       // scalar compare
	SOPK                       // scalar with inline 16-bit constant
	SOPP                       // scalar program control
	VOP1                       // vector, one source
	VOP2                       // vector, two sources
	VOPC                       // vector compare, writes the condition mask
	VOP3                       // vector three-address form with modifiers
	VOP3P                      // packed-math three-address form
	VOPD                       // dual co-issued pair
	VINTERP                    // interpolation (gfx11+)
	SDWA                       // sub-dword addressing variant
	DPP                        // data-parallel-primitive variant (row/bank selects)
	DPP8                       // 8-lane-select variant
	SMEM                       // scalar memory
	DS                         // local/global data share
	MUBUF                      // untyped buffer
	MTBUF                      // typed buffer
	FLAT                       // flat/global/scratch memory
	MIMG                       // image memory
	EXP                        // export

	MAC        // multiply-accumulate shape (tied accumulator source)
	GATHER4    // four-component gather, fixed dest width
	ATOMIC_RET // atomic that returns the previous value
	KIMM       // carries a mandatory inline literal operand
)

func FlagName(f uint32) string { return flagNames[f] }

var flagNames = map[uint32]string{
	DEFAULT:    "DEFAULT",
	SOP1:       "SOP1",
	SOP2:       "SOP2",
	SOPC:       "SOPC",
	SOPK:       "SOPK",
	SOPP:       "SOPP",
	VOP1:       "VOP1",
	VOP2:       "VOP2",
	VOPC:       "VOPC",
	VOP3:       "VOP3",
	VOP3P:      "VOP3P",
	VOPD:       "VOPD",
	VINTERP:    "VINTERP",
	SDWA:       "SDWA",
	DPP:        "DPP",
	DPP8:       "DPP8",
	SMEM:       "SMEM",
	DS:         "DS",
	MUBUF:      "MUBUF",
	MTBUF:      "MTBUF",
	FLAT:       "FLAT",
	MIMG:       "MIMG",
	EXP:        "EXP",
	MAC:        "MAC",
	GATHER4:    "GATHER4",
	ATOMIC_RET: "ATOMIC_RET",
	KIMM:       "KIMM",
}
