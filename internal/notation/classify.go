package notation

import "xiangqi/internal/xiangqi"

// Symbol is one classified character of a record.
type Symbol struct {
	Rune      rune
	Class     SymbolClass
	Piece     xiangqi.PieceType // ClassPiece
	Value     int               // 数字 1..9
	Ordinal   Ordinal           // ClassOrdinal
	Direction Direction         // ClassDirection
}

// Classified is a normalised record whose four symbols have been typed and
// whose colour has been decided.
type Classified struct {
	Record  string
	Side    xiangqi.Side
	Symbols [4]Symbol
}

// PieceSelector returns the two symbols naming the moving piece.
func (c Classified) PieceSelector() [2]Symbol {
	return [2]Symbol{c.Symbols[0], c.Symbols[1]}
}

// MoveSelector returns the direction and its target.
func (c Classified) MoveSelector() [2]Symbol {
	return [2]Symbol{c.Symbols[2], c.Symbols[3]}
}

// Classify types each symbol of record. Shared glyphs (车 马 炮) take the
// colour of a numeral in the second position when there is one, otherwise
// the colour of turn.
func Classify(record string, turn xiangqi.Side) (Classified, error) {
	norm := normalize(record)
	runes := []rune(norm)
	if len(runes) != 4 {
		return Classified{}, failCount(InvalidLength, record, len(runes))
	}
	c := Classified{Record: record}

	// 第一位：棋子或序数
	fixed := xiangqi.NoSide
	if g, ok := pieceGlyphs[runes[0]]; ok {
		c.Symbols[0] = Symbol{Rune: runes[0], Class: ClassPiece, Piece: g.kind}
		fixed = g.side
	} else if o, ok := ordinalRunes[runes[0]]; ok {
		c.Symbols[0] = Symbol{Rune: runes[0], Class: ClassOrdinal, Ordinal: o}
	} else {
		return Classified{}, unknownSymbol(record, runes[0])
	}

	// 第二位：序数后面跟棋子或纵线，棋子后面只能跟纵线
	numSide := xiangqi.NoSide
	if g, ok := pieceGlyphs[runes[1]]; ok && c.Symbols[0].Class == ClassOrdinal {
		c.Symbols[1] = Symbol{Rune: runes[1], Class: ClassPiece, Piece: g.kind}
		fixed = g.side
	} else if n, class := numeralValue(runes[1]); class != ClassNone {
		c.Symbols[1] = Symbol{Rune: runes[1], Class: class, Value: n}
		numSide = numeralSide(class)
	} else {
		return Classified{}, unknownSymbol(record, runes[1])
	}

	d, ok := directionRunes[runes[2]]
	if !ok {
		return Classified{}, unknownSymbol(record, runes[2])
	}
	c.Symbols[2] = Symbol{Rune: runes[2], Class: ClassDirection, Direction: d}

	n, class := numeralValue(runes[3])
	if class == ClassNone {
		return Classified{}, unknownSymbol(record, runes[3])
	}
	c.Symbols[3] = Symbol{Rune: runes[3], Class: class, Value: n}

	switch {
	case fixed != xiangqi.NoSide && numSide != xiangqi.NoSide && fixed != numSide:
		return Classified{}, unknownSymbol(record, runes[1])
	case fixed != xiangqi.NoSide:
		c.Side = fixed
	case numSide != xiangqi.NoSide:
		c.Side = numSide
	case turn == xiangqi.Black:
		c.Side = xiangqi.Black
	default:
		c.Side = xiangqi.Red
	}
	if numeralSide(class) != c.Side {
		return Classified{}, unknownSymbol(record, runes[3])
	}
	return c, nil
}
