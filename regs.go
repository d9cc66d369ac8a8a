package gcn

import "fmt"

// Register families
const (
	REG_VGPR    = iota // vector general-purpose
	REG_SGPR           // scalar general-purpose
	REG_AGPR           // accumulator vector
	REG_TTMP           // trap temporary
	REG_SPECIAL        // named hardware registers, addressed by source code
	REG_VGPR16         // 16-bit half of a vector register
)

// regHiHalf marks the high half of a REG_VGPR16 register.
const regHiHalf Reg = 1 << 24

// Register file sizes
const (
	numVGPRs = 256
	numAGPRs = 256
	numSGPRs = 106
	numTTMPs = 16
)

// Reg is a register group packed into a single integer:
// bits [23:16] hold the group width in 32-bit units, bits [15:8] the family,
// and bits [7:0] the index of the first register (for REG_SPECIAL, the source
// operand code of the register).
type Reg uint32

// Special registers. The index is the 32-bit source operand code.
const (
	FLAT_SCR_LO   Reg = Reg(1<<16 | REG_SPECIAL<<8 | 102)
	FLAT_SCR_HI   Reg = Reg(1<<16 | REG_SPECIAL<<8 | 103)
	XNACK_MASK_LO Reg = Reg(1<<16 | REG_SPECIAL<<8 | 104)
	XNACK_MASK_HI Reg = Reg(1<<16 | REG_SPECIAL<<8 | 105)
	VCC_LO        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 106)
	VCC_HI        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 107)
	TBA_LO        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 108)
	TBA_HI        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 109)
	TMA_LO        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 110)
	TMA_HI        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 111)
	M0            Reg = Reg(1<<16 | REG_SPECIAL<<8 | 124)
	SGPR_NULL     Reg = Reg(1<<16 | REG_SPECIAL<<8 | 125)
	EXEC_LO       Reg = Reg(1<<16 | REG_SPECIAL<<8 | 126)
	EXEC_HI       Reg = Reg(1<<16 | REG_SPECIAL<<8 | 127)

	SRC_SHARED_BASE          Reg = Reg(1<<16 | REG_SPECIAL<<8 | 235)
	SRC_SHARED_LIMIT         Reg = Reg(1<<16 | REG_SPECIAL<<8 | 236)
	SRC_PRIVATE_BASE         Reg = Reg(1<<16 | REG_SPECIAL<<8 | 237)
	SRC_PRIVATE_LIMIT        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 238)
	SRC_POPS_EXITING_WAVE_ID Reg = Reg(1<<16 | REG_SPECIAL<<8 | 239)

	VCCZ       Reg = Reg(1<<16 | REG_SPECIAL<<8 | 251)
	EXECZ      Reg = Reg(1<<16 | REG_SPECIAL<<8 | 252)
	SCC        Reg = Reg(1<<16 | REG_SPECIAL<<8 | 253)
	LDS_DIRECT Reg = Reg(1<<16 | REG_SPECIAL<<8 | 254)

	// 64-bit aligned pairs
	FLAT_SCR     Reg = Reg(2<<16 | REG_SPECIAL<<8 | 102)
	XNACK_MASK   Reg = Reg(2<<16 | REG_SPECIAL<<8 | 104)
	VCC          Reg = Reg(2<<16 | REG_SPECIAL<<8 | 106)
	TBA          Reg = Reg(2<<16 | REG_SPECIAL<<8 | 108)
	TMA          Reg = Reg(2<<16 | REG_SPECIAL<<8 | 110)
	SGPR_NULL64  Reg = Reg(2<<16 | REG_SPECIAL<<8 | 125)
	EXEC         Reg = Reg(2<<16 | REG_SPECIAL<<8 | 126)
)

// VReg returns a vector register group of the given width in 32-bit units,
// starting at v<n>.
func VReg(dwords, n uint8) Reg { return makeReg(REG_VGPR, dwords, n) }

// SReg returns a scalar register group of the given width in 32-bit units,
// starting at s<n>.
func SReg(dwords, n uint8) Reg { return makeReg(REG_SGPR, dwords, n) }

// AReg returns an accumulator register group of the given width in 32-bit
// units, starting at a<n>.
func AReg(dwords, n uint8) Reg { return makeReg(REG_AGPR, dwords, n) }

// TTmpReg returns a trap-temporary register group of the given width in
// 32-bit units, starting at ttmp<n>.
func TTmpReg(dwords, n uint8) Reg { return makeReg(REG_TTMP, dwords, n) }

// VReg16 returns the low or high 16-bit half of v<n>.
func VReg16(n uint8, hi bool) Reg {
	r := makeReg(REG_VGPR16, 1, n)
	if hi {
		r |= regHiHalf
	}
	return r
}

// HiHalf reports whether a REG_VGPR16 register is the high half.
func (r Reg) HiHalf() bool { return r&regHiHalf != 0 }

func makeReg(family int, dwords, n uint8) Reg {
	return Reg(uint32(dwords)<<16 | uint32(family)<<8 | uint32(n))
}

// Get the family of the register (REG_VGPR, REG_SGPR, ...).
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the index of the first register in the group. For REG_SPECIAL this is
// the 32-bit source operand code of the register.
func (r Reg) Num() uint8 { return uint8(r) }

// Get the width of the register group in 32-bit units.
func (r Reg) Dwords() uint8 { return uint8(r >> 16) }

func (r Reg) String() string {
	n, dw := uint32(r.Num()), uint32(r.Dwords())
	var prefix string
	switch r.Family() {
	case REG_VGPR:
		prefix = "v"
	case REG_SGPR:
		prefix = "s"
	case REG_AGPR:
		prefix = "a"
	case REG_TTMP:
		prefix = "ttmp"
	case REG_VGPR16:
		half := "l"
		if r.HiHalf() {
			half = "h"
		}
		return fmt.Sprintf("v%d.%s", n, half)
	case REG_SPECIAL:
		if dw >= 2 {
			if s, ok := special64Names[uint8(n)]; ok {
				return s
			}
		}
		if s, ok := special32Names[uint8(n)]; ok {
			return s
		}
		return fmt.Sprintf("special(%d)", n)
	default:
		return fmt.Sprintf("reg(%#x)", uint32(r))
	}
	if dw <= 1 {
		return fmt.Sprintf("%s%d", prefix, n)
	}
	return fmt.Sprintf("%s[%d:%d]", prefix, n, n+dw-1)
}

var special32Names = map[uint8]string{
	102: "flat_scratch_lo",
	103: "flat_scratch_hi",
	104: "xnack_mask_lo",
	105: "xnack_mask_hi",
	106: "vcc_lo",
	107: "vcc_hi",
	108: "tba_lo",
	109: "tba_hi",
	110: "tma_lo",
	111: "tma_hi",
	124: "m0",
	125: "null",
	126: "exec_lo",
	127: "exec_hi",
	235: "src_shared_base",
	236: "src_shared_limit",
	237: "src_private_base",
	238: "src_private_limit",
	239: "src_pops_exiting_wave_id",
	251: "vccz",
	252: "execz",
	253: "scc",
	254: "lds_direct",
}

var special64Names = map[uint8]string{
	102: "flat_scratch",
	104: "xnack_mask",
	106: "vcc",
	108: "tba",
	110: "tma",
	125: "null",
	126: "exec",
	235: "src_shared_base",
	236: "src_shared_limit",
	237: "src_private_base",
	238: "src_private_limit",
}
