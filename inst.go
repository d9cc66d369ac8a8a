package gcn

import "fmt"

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }

// Op identifies an opcode. It indexes the internal descriptor table; values
// are stable within a process but carry no meaning across versions.
type Op uint16

// Get the mnemonic of the opcode.
func (op Op) Name() string { return opdescs[op].name }

// Get the encoding-class flags of the opcode (see the flags package).
func (op Op) Flags() uint32 { return opdescs[op].flags }

func (op Op) desc() *opdesc { return &opdescs[op] }

// AllOps returns a handle for every opcode in the descriptor table,
// in table order.
func AllOps() []Op {
	ops := make([]Op, len(opdescs))
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// OpName identifies an operand slot within an opcode descriptor.
type OpName uint8

// Operand slot names
const (
	OpNone OpName = iota
	OpSrc0
	OpSrc1
	OpSrc2
	OpSrc0Mods
	OpSrc1Mods
	OpSrc2Mods
	OpVDst
	OpSDst
	OpVDstIn
	OpOld
	OpVData
	OpVAddr0 // OpVAddr0..OpVAddr4 are consecutive
	OpVAddr1
	OpVAddr2
	OpVAddr3
	OpVAddr4
	OpSAddr
	OpSRsrc
	OpSSamp
	OpSOffset
	OpSBase
	OpSData
	OpAddr
	OpData0
	OpData1
	OpOffset
	OpOffset0
	OpOffset1
	OpGDS
	OpCPol
	OpSWZ
	OpTFE
	OpLWE
	OpR128
	OpUNorm
	OpDMask
	OpDim
	OpA16
	OpD16
	OpClamp
	OpOMod
	OpOpSel
	OpOpSelHi
	OpNegLo
	OpNegHi
	OpSImm16
	OpImm
	OpImmDeferred
	OpDPP8
	OpDPPCtrl
	OpRowMask
	OpBankMask
	OpBoundCtrl
	OpFI
	OpDstSel
	OpDstUnused
	OpSrc0Sel
	OpSrc1Sel
	OpTgt
	OpEn
	OpDone
	OpCompr
	OpVM
	OpVDstX
	OpSrc0X
	OpVSrc1X
	OpImmX
	OpVDstY
	OpSrc0Y
	OpVSrc1Y
	OpImmY
	OpWaitEXP
	OpSrc3
	OpOffEn
	OpIdxEn
	numOpNames
)

// Operand decode kinds
const (
	kNone        uint8 = iota // not encoded; filled by the normalizer
	kVGPR                     // 8-bit vector register code
	kVGPR16                   // 9-bit vector register code, bit 8 selects the high half
	kAGPR                     // 8-bit accumulator register code
	kSGPR                     // 7-bit scalar code, alignment-shifted at width
	kSrc                      // 9-bit register-or-constant code
	kSrc16                    // kSrc over the 16-bit register file
	kSrcFP64                  // kSrc with 64-bit float inline constants
	kSrcA                     // 9-bit code in the accumulator bank
	kSrcAV                    // 10-bit code, bit 9 selects the accumulator bank
	kAVLdSt                   // memory data; bank inherited from a sibling on gfx90a
	kSrcDeferred              // kSrc, literal kept as a sentinel for later broadcast
	kKImm                     // mandatory 32-bit literal field
	kImm                      // plain unsigned field
	kSImm16                   // signed 16-bit field
	kBranch                   // signed word offset from the next instruction
	kSMEMOffset               // generation-dependent width and signedness
	kBool                     // condition mask; width follows the wavefront size
	kVCC                      // implicit vcc source, not encoded
	kSDWASrc                  // sub-dword source (9-bit on gfx9+, vector-only on gfx8)
	kSDWASrc16                // kSDWASrc with 16-bit inline constants
	kSDWAVopcDst              // 7-bit compare destination, bit 6 must be set
	kVOPDDstY                 // 7-bit vector dest, low bit borrowed from vdstX
	kFI                       // raw lane-select variant selector byte
)

// slot describes one operand position of an opcode: its name, decode kind,
// register width in 32-bit units, and immediate width in bits.
type slot struct {
	name OpName
	kind uint8
	dw   uint8
	imw  uint8
}

type opdesc struct {
	name  string
	flags uint32
	slots []slot
}

// slotIndex returns the position of the named slot in the descriptor, or -1.
func (d *opdesc) slotIndex(n OpName) int {
	for i := range d.slots {
		if d.slots[i].name == n {
			return i
		}
	}
	return -1
}

// Inst is a decoded instruction.
type Inst struct {
	Op       Op
	Addr     uint64
	Operands []Operand
	// Warns holds non-fatal diagnostics collected while decoding operands
	// (out-of-range registers, misaligned scalar groups, ...).
	Warns []string

	// slots[i] is the descriptor slot index of Operands[i]. Operands stay
	// sorted by slot index; the normalizer inserts by name.
	slots []uint8
}

// Named returns the operand decoded for the named slot, if present.
func (in *Inst) Named(n OpName) (Operand, bool) {
	i := in.namedIndex(n)
	if i < 0 {
		return nil, false
	}
	return in.Operands[i], true
}

func (in *Inst) namedIndex(n OpName) int {
	si := in.Op.desc().slotIndex(n)
	if si < 0 {
		return -1
	}
	for i, s := range in.slots {
		if int(s) == si {
			return i
		}
	}
	return -1
}

func (in *Inst) add(slotIdx int, o Operand) {
	in.Operands = append(in.Operands, o)
	in.slots = append(in.slots, uint8(slotIdx))
}

// insertNamed inserts an operand for the named slot at its declared position.
// It reports false when the descriptor has no such slot or the slot is
// already populated.
func (in *Inst) insertNamed(n OpName, o Operand) bool {
	si := in.Op.desc().slotIndex(n)
	if si < 0 {
		return false
	}
	at := len(in.slots)
	for i, s := range in.slots {
		if int(s) == si {
			return false
		}
		if int(s) > si {
			at = i
			break
		}
	}
	in.Operands = append(in.Operands, nil)
	copy(in.Operands[at+1:], in.Operands[at:])
	in.Operands[at] = o
	in.slots = append(in.slots, 0)
	copy(in.slots[at+1:], in.slots[at:])
	in.slots[at] = uint8(si)
	return true
}

// setNamed replaces the operand in the named slot, inserting it when absent.
func (in *Inst) setNamed(n OpName, o Operand) bool {
	if i := in.namedIndex(n); i >= 0 {
		in.Operands[i] = o
		return true
	}
	return in.insertNamed(n, o)
}

// removeNamed drops the operand in the named slot, if present.
func (in *Inst) removeNamed(n OpName) {
	i := in.namedIndex(n)
	if i < 0 {
		return
	}
	in.Operands = append(in.Operands[:i], in.Operands[i+1:]...)
	in.slots = append(in.slots[:i], in.slots[i+1:]...)
}

func (in *Inst) warnf(format string, args ...interface{}) {
	in.Warns = append(in.Warns, fmt.Sprintf(format, args...))
}

// fieldSet collects the raw encoding fields extracted for one candidate,
// indexed by slot name.
type fieldSet struct {
	val [numOpNames]uint32
	set [numOpNames]bool
}

func (fs *fieldSet) put(n OpName, v uint32) {
	fs.val[n] = v
	fs.set[n] = true
}
