package schedule

// VarKind is the 2-bit tag packed into the high bits of a VarID.
type VarKind uint8

const (
	Constant VarKind = iota
	LoopInductionVariable
	Memory
	Term
)

func (k VarKind) String() string {
	switch k {
	case Constant:
		return "Constant"
	case LoopInductionVariable:
		return "LoopInductionVariable"
	case Memory:
		return "Memory"
	case Term:
		return "Term"
	default:
		return "VarKind(?)"
	}
}

// VarID is a 32-bit tag packing a 2-bit kind with a 30-bit index, matching
// the reference engine's bit-packed variable-reference representation.
type VarID uint32

const (
	varIDIndexBits = 30
	varIDIndexMask = (uint32(1) << varIDIndexBits) - 1
)

// NewVarID packs kind and index into a VarID. Panics if index does not fit
// in 30 bits — a programming error, not a runtime condition.
func NewVarID(kind VarKind, index uint32) VarID {
	if index > varIDIndexMask {
		panic("schedule: VarID index exceeds 30 bits")
	}
	return VarID(uint32(kind)<<varIDIndexBits | index)
}

// Kind returns the packed kind tag.
func (v VarID) Kind() VarKind { return VarKind(uint32(v) >> varIDIndexBits) }

// Index returns the packed 30-bit index.
func (v VarID) Index() uint32 { return uint32(v) & varIDIndexMask }

func (v VarID) String() string {
	return v.Kind().String() + "#" + itoa(int(v.Index()))
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}
