package hunk

import "math"

// parser holds the state while walking the blocks of an executable.
type parser struct {
	r       reader
	count   int
	sizes   []uint32
	memory  []MemoryType
	hunks   []*Hunk
	current int    // index of the hunk that the next END block closes
	name    string // name block read before the content block
}

// Parse parses an AmigaOS hunk executable.
func Parse(data []byte) (*File, error) {
	p := &parser{r: reader{data: data}}

	magic, err := p.r.long()
	if err != nil {
		return nil, err
	}
	if magic != IDHeader {
		return nil, &ParseError{Kind: ErrBadMagic, Value: magic}
	}

	file, err := p.parseHeader()
	if err != nil {
		return nil, err
	}
	if err := p.parseBlocks(); err != nil {
		return nil, err
	}

	if len(p.hunks) != p.count {
		return nil, &ParseError{Kind: ErrHunkCountMismatch, Expected: p.count, Found: len(p.hunks), Offset: p.r.pos}
	}
	file.Hunks = p.hunks
	return file, nil
}

// parseHeader reads the resident library names and the hunk table.
func (p *parser) parseHeader() (*File, error) {
	for {
		longs, err := p.r.long()
		if err != nil {
			return nil, err
		}
		if longs == 0 {
			break
		}
		if err := p.r.skipLongs(longs); err != nil {
			return nil, err
		}
	}

	count, err := p.r.long()
	if err != nil {
		return nil, err
	}
	if count > maxHunks {
		return nil, invalidValue("hunk count > 65536", count, p.r.pos-4)
	}
	p.count = int(count)

	file := &File{}
	if file.First, err = p.r.long(); err != nil {
		return nil, err
	}
	if file.Last, err = p.r.long(); err != nil {
		return nil, err
	}

	p.sizes = make([]uint32, 0, p.count)
	p.memory = make([]MemoryType, 0, p.count)
	for range p.count {
		word, err := p.r.long()
		if err != nil {
			return nil, err
		}
		mem := MemoryFromFlags(word)
		if mem.Kind == MemoryExtended {
			// additional attribute word
			if _, err := p.r.long(); err != nil {
				return nil, err
			}
		}
		p.sizes = append(p.sizes, (word&0x3FFFFFFF)*4)
		p.memory = append(p.memory, mem)
	}
	return file, nil
}

// parseBlocks walks the hunk blocks until the end of the data, the last
// END block or an overlay marker.
func (p *parser) parseBlocks() error {
	for !p.r.eof() {
		typeWord, err := p.r.long()
		if err != nil {
			// trailing bytes shorter than a block id
			return nil //nolint:nilerr
		}
		offset := p.r.pos - 4

		switch id := typeWord & 0x3FFFFFFF; id {
		case IDCode, IDData:
			err = p.parseContent(Type(id), typeWord)
		case IDBSS:
			err = p.parseBSS(typeWord)
		case IDReloc32:
			err = p.parseReloc32()
		case IDReloc32Short:
			err = p.parseReloc32Short()
		case IDSymbol:
			err = p.parseSymbols()
		case IDDebug:
			err = p.parseDebug()
		case IDName:
			err = p.parseName()
		case IDExt:
			err = p.skipExt()
		case IDRelReloc32, IDRelReloc16, IDRelReloc8, IDDRel32, IDDRel16, IDDRel8, IDAbsReloc16:
			err = p.skipRelocations()

		case IDEnd:
			p.current++
			if p.current >= p.count {
				return nil
			}
		case IDOverlay, IDBreak:
			return nil

		case IDHeader:
			return invalidValue("unexpected HUNK_HEADER in body", typeWord, offset)
		case IDUnit, IDLib, IDIndex:
			return invalidValue("object/library hunk in executable", typeWord, offset)
		default:
			return &ParseError{Kind: ErrUnknownHunkType, Value: typeWord, Offset: offset}
		}

		if err != nil {
			return err
		}
	}
	return nil
}

// newHunk creates the hunk for the current index. Sizes and memory types
// come from the header table, a memory type on the block itself takes
// precedence unless it is "any".
func (p *parser) newHunk(typ Type, typeWord, size uint32) *Hunk {
	h := &Hunk{
		Index:     p.current,
		Type:      typ,
		Memory:    MemoryFromFlags(typeWord),
		AllocSize: size,
	}
	if p.current < len(p.sizes) {
		h.AllocSize = p.sizes[p.current]
		if h.Memory.Kind == MemoryAny {
			h.Memory = p.memory[p.current]
		}
	}
	h.Name, p.name = p.name, ""
	p.hunks = append(p.hunks, h)
	return h
}

func (p *parser) last() *Hunk {
	if len(p.hunks) == 0 {
		return nil
	}
	return p.hunks[len(p.hunks)-1]
}

func (p *parser) parseContent(typ Type, typeWord uint32) error {
	longs, err := p.r.long()
	if err != nil {
		return err
	}
	content, err := p.r.longs(longs)
	if err != nil {
		return err
	}

	h := p.newHunk(typ, typeWord, longs*4)
	h.Data = make([]byte, len(content))
	copy(h.Data, content)
	return nil
}

func (p *parser) parseBSS(typeWord uint32) error {
	longs, err := p.r.long()
	if err != nil {
		return err
	}
	p.newHunk(BSS, typeWord, longs*4)
	return nil
}

func (p *parser) parseReloc32() error {
	for {
		count, err := p.r.long()
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		needed := uint64(count)*4 + 4
		if uint64(p.r.remaining()) < needed {
			return p.r.tooShort(int(min(needed, math.MaxInt32)))
		}

		target, err := p.r.long()
		if err != nil {
			return err
		}
		offsets := make([]uint32, 0, count)
		for range count {
			offset, err := p.r.long()
			if err != nil {
				return err
			}
			offsets = append(offsets, offset)
		}
		p.addRelocation(target, offsets)
	}
}

func (p *parser) parseReloc32Short() error {
	for {
		count, err := p.r.word()
		if err != nil {
			return err
		}
		if count == 0 {
			break
		}
		needed := int(count)*2 + 2
		if p.r.remaining() < needed {
			return p.r.tooShort(needed)
		}

		target, err := p.r.word()
		if err != nil {
			return err
		}
		offsets := make([]uint32, 0, count)
		for range count {
			offset, err := p.r.word()
			if err != nil {
				return err
			}
			offsets = append(offsets, uint32(offset))
		}
		p.addRelocation(uint32(target), offsets)
	}
	p.r.alignLong()
	return nil
}

func (p *parser) addRelocation(target uint32, offsets []uint32) {
	if h := p.last(); h != nil {
		h.Relocations = append(h.Relocations, Relocation{Target: target, Offsets: offsets})
	}
}

func (p *parser) parseSymbols() error {
	for {
		longs, err := p.r.long()
		if err != nil {
			return err
		}
		if longs == 0 {
			return nil
		}
		name, err := p.r.name(longs)
		if err != nil {
			return err
		}
		value, err := p.r.long()
		if err != nil {
			return err
		}
		if h := p.last(); h != nil {
			h.Symbols = append(h.Symbols, Symbol{Name: name, Value: value})
		}
	}
}

func (p *parser) parseDebug() error {
	longs, err := p.r.long()
	if err != nil {
		return err
	}
	content, err := p.r.longs(longs)
	if err != nil {
		return err
	}
	if h := p.last(); h != nil {
		h.Debug = make([]byte, len(content))
		copy(h.Debug, content)
	}
	return nil
}

// parseName assigns the name to the current hunk, or keeps it for the
// content block that follows.
func (p *parser) parseName() error {
	longs, err := p.r.long()
	if err != nil {
		return err
	}
	name, err := p.r.name(longs)
	if err != nil {
		return err
	}
	if h := p.last(); h != nil && h.Index == p.current {
		h.Name = name
		return nil
	}
	p.name = name
	return nil
}

// External reference types. Types below extReference are definitions
// followed by a value, the common types carry an additional size.
const (
	extReference = 128
	extCommon    = 130
	extRelCommon = 137
)

// skipExt skips the external references and definitions of a block.
func (p *parser) skipExt() error {
	for {
		header, err := p.r.long()
		if err != nil {
			return err
		}
		if header == 0 {
			return nil
		}
		extType := header >> 24
		if err := p.r.skipLongs(header & 0x00FFFFFF); err != nil {
			return err
		}

		switch {
		case extType < extReference:
			err = p.r.skip(4)
		case extType == extCommon, extType == extRelCommon:
			if err = p.r.skip(4); err == nil {
				err = p.skipCounted()
			}
		default:
			err = p.skipCounted()
		}
		if err != nil {
			return err
		}
	}
}

// skipCounted skips a longword count followed by that many longwords.
func (p *parser) skipCounted() error {
	count, err := p.r.long()
	if err != nil {
		return err
	}
	return p.r.skipLongs(count)
}

// skipRelocations skips relocation blocks that are not evaluated.
func (p *parser) skipRelocations() error {
	for {
		count, err := p.r.long()
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if err := p.r.skip(4); err != nil {
			return err
		}
		if err := p.r.skipLongs(count); err != nil {
			return err
		}
	}
}
