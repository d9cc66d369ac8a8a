package gcn

import (
	"encoding/binary"
	"errors"

	"github.com/gcndis/gcn/feats"
)

// Errors returned by Decode. Operand-level problems that do not invalidate
// the match are reported through Inst.Warns instead.
var (
	ErrNoMatch         = errors.New("gcn: no encoding matched")
	ErrTruncated       = errors.New("gcn: truncated instruction")
	ErrLiteralConflict = errors.New("gcn: more than one unique 32-bit literal")
)

// An instruction never spans more than 20 bytes: an 8-byte encoding plus
// either a trailing literal or three extra address words.
const maxInstBytes = 20

// Subtarget selects the hardware generation and feature set a Decoder
// targets. It is immutable once constructed.
type Subtarget struct {
	gen feats.Gen
	set feats.Feature
}

// NewSubtarget builds a subtarget for the given generation with its default
// features plus any extras.
func NewSubtarget(gen feats.Gen, extra ...feats.Feature) *Subtarget {
	set := feats.Defaults(gen)
	for _, f := range extra {
		set |= f
	}
	return &Subtarget{gen: gen, set: set}
}

// Get the hardware generation.
func (st *Subtarget) Gen() feats.Gen { return st.gen }

// Check if the subtarget has the given feature.
func (st *Subtarget) Has(f feats.Feature) bool { return st.set&f != 0 }

// Check if the subtarget runs 32-wide wavefronts.
func (st *Subtarget) Wave32() bool { return st.Has(feats.WAVE32) }

// Largest scalar register addressable as a source operand.
func (st *Subtarget) sgprMax() uint32 {
	if st.gen >= feats.GFX10 {
		return 105
	}
	return 101
}

// First trap-temporary source operand code.
func (st *Subtarget) ttmpMin() uint32 {
	if st.gen >= feats.GFX9 {
		return 108
	}
	return 112
}

// Decoder decodes machine code for a fixed subtarget. A Decoder is safe for
// concurrent use once configured; all per-call state lives on the stack.
type Decoder struct {
	sub *Subtarget
	sym Symbolizer
}

func NewDecoder(sub *Subtarget) *Decoder {
	return &Decoder{sub: sub}
}

// SetSymbolizer installs a symbolizer used to resolve branch targets. Must be
// called before the first Decode.
func (d *Decoder) SetSymbolizer(sym Symbolizer) { d.sym = sym }

// instBits holds the fixed-width portion of a candidate encoding.
type instBits struct {
	w [3]uint32
}

func (b instBits) d0() uint32 { return b.w[0] }
func (b instBits) d1() uint32 { return b.w[1] }
func (b instBits) d2() uint32 { return b.w[2] }

// Low two words as a single value, for mask matching.
func (b instBits) lo64() uint64 { return uint64(b.w[0]) | uint64(b.w[1])<<32 }

// session is the per-call decode state.
type session struct {
	d    *Decoder
	sub  *Subtarget
	buf  []byte // input, capped at maxInstBytes
	addr uint64

	pos        int // bytes consumed by the current candidate
	literal    uint32
	hasLiteral bool
	mimgNSA    bool
}

func (s *session) reset(width int) {
	s.pos = width
	s.literal = 0
	s.hasLiteral = false
	s.mimgNSA = false
}

// Decode decodes one instruction at addr. It returns the instruction, the
// number of bytes consumed, and an error. On failure the byte count is the
// minimum forward step (4 bytes when available, the remainder otherwise).
func (d *Decoder) Decode(b []byte, addr uint64) (*Inst, int, error) {
	if len(b) < 4 {
		return nil, len(b), ErrTruncated
	}
	s := session{d: d, sub: d.sub, buf: b, addr: addr}
	if len(b) > maxInstBytes {
		s.buf = b[:maxInstBytes]
	}

	var bits instBits
	n := len(s.buf) / 4
	for i := 0; i < n && i < 3; i++ {
		bits.w[i] = binary.LittleEndian.Uint32(s.buf[i*4:])
	}

	var fatal error
	try := func(group []*encTable, width int) (*Inst, int, error) {
		if len(s.buf) < width {
			return nil, 0, nil
		}
		for _, t := range group {
			if t.gate != nil && !t.gate(d.sub) {
				continue
			}
			lo := bits.lo64()
			if width == 4 {
				lo &= 0xffffffff
			}
			for i := range t.entries {
				e := &t.entries[i]
				if lo&e.mask != e.bits {
					continue
				}
				in, err := s.attempt(t, e.op, bits, width)
				if err == errSoftFail {
					continue
				}
				if err != nil {
					if fatal == nil {
						fatal = err
					}
					continue
				}
				return in, s.pos, nil
			}
		}
		return nil, 0, nil
	}

	if d.sub.gen >= feats.GFX11 {
		if in, n, err := try(tables96, 12); in != nil || err != nil {
			return in, n, err
		}
	}
	if in, n, err := try(tables64, 8); in != nil || err != nil {
		return in, n, err
	}
	if in, n, err := try(tables32, 4); in != nil || err != nil {
		return in, n, err
	}
	// A 4-byte miss may still be the head of a co-issued pair or another
	// 8-byte form.
	if in, n, err := try(tables64Post, 8); in != nil || err != nil {
		return in, n, err
	}

	err := fatal
	if err == nil {
		err = ErrNoMatch
	}
	return nil, 4, err
}

// errSoftFail aborts a candidate that matched structurally but failed a
// validity check; the cascade resumes at the next candidate.
var errSoftFail = errors.New("gcn: soft fail")

// attempt decodes one matched candidate: extract fields, decode operands in
// declared slot order, then run the table-specific and generic fixups.
func (s *session) attempt(t *encTable, op Op, bits instBits, width int) (*Inst, error) {
	if t.valid != nil && !t.valid(bits) {
		return nil, errSoftFail
	}
	s.reset(width)
	var f fieldSet
	if err := t.layout(op, bits, s, &f); err != nil {
		return nil, err
	}

	in := &Inst{Op: op, Addr: s.addr}
	desc := op.desc()
	for i := range desc.slots {
		sl := &desc.slots[i]
		var o Operand
		var err error
		switch {
		case sl.kind == kNone:
			continue
		case sl.kind == kVCC:
			o = s.waveVCC()
		case !f.set[sl.name]:
			continue
		default:
			o, err = s.decodeSlot(in, sl, f.val[sl.name])
		}
		if err != nil {
			return nil, err
		}
		if o != nil {
			in.add(i, o)
		}
	}

	if err := s.applyTableConv(t.conv, in); err != nil {
		return nil, err
	}
	if err := s.applyFixups(in); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *session) waveVCC() Reg {
	if s.sub.Wave32() {
		return VCC_LO
	}
	return VCC
}
