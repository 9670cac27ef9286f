package notation

import (
	"strings"

	"golang.org/x/text/width"

	"xiangqi/internal/xiangqi"
)

// SymbolClass is the semantic class of one character of a record.
type SymbolClass int8

const (
	ClassNone SymbolClass = iota
	ClassPiece
	ClassOrdinal
	ClassChineseNumeral // 红方用
	ClassArabicNumeral  // 黑方用
	ClassDirection
)

func (c SymbolClass) String() string {
	switch c {
	case ClassPiece:
		return "piece"
	case ClassOrdinal:
		return "ordinal"
	case ClassChineseNumeral:
		return "chinese-numeral"
	case ClassArabicNumeral:
		return "arabic-numeral"
	case ClassDirection:
		return "direction"
	default:
		return "none"
	}
}

type Direction int8

const (
	DirNone Direction = iota
	Forward
	Backward
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Horizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Ordinal ranks same-kind pieces counted from the front (the one closest to
// the opponent).
type Ordinal int8

const (
	OrdNone   Ordinal = iota
	OrdFront          // 前
	OrdSecond         // 二 / 2
	OrdThird          // 三 / 3
	OrdFourth         // 四 / 4
	OrdFifth          // 五 / 5
	OrdMiddle         // 中
	OrdBack           // 后
)

const (
	runeForward    = '进'
	runeBackward   = '退'
	runeHorizontal = '平'
	runeFront      = '前'
	runeMiddle     = '中'
	runeBack       = '后'
)

// 纵线表：下标是记谱数字 1..9，值是列下标。红方从右往左数，黑方从左往右数。
var columnTables = [2][10]int{
	xiangqi.Red:   {-1, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	xiangqi.Black: {-1, 0, 1, 2, 3, 4, 5, 6, 7, 8},
}

var numeralRunes = [2][10]rune{
	xiangqi.Red:   {0, '一', '二', '三', '四', '五', '六', '七', '八', '九'},
	xiangqi.Black: {0, '1', '2', '3', '4', '5', '6', '7', '8', '9'},
}

// ColumnOf converts a file numeral 1..9 read by side into a column index.
// It returns -1 when n is out of range.
func ColumnOf(side xiangqi.Side, n int) int {
	if n < 1 || n > 9 || (side != xiangqi.Red && side != xiangqi.Black) {
		return -1
	}
	return columnTables[side][n]
}

// FileNumber is the inverse of ColumnOf.
func FileNumber(side xiangqi.Side, col int) int {
	if col < 0 || col >= xiangqi.Cols {
		return 0
	}
	if side == xiangqi.Red {
		return xiangqi.Cols - col
	}
	return col + 1
}

// Numeral renders 1..9 in side's numeral system.
func Numeral(side xiangqi.Side, n int) rune {
	if n < 1 || n > 9 || (side != xiangqi.Red && side != xiangqi.Black) {
		return 0
	}
	return numeralRunes[side][n]
}

// ColumnNumeral renders the file of column col as read by side.
func ColumnNumeral(side xiangqi.Side, col int) rune {
	return Numeral(side, FileNumber(side, col))
}

func numeralValue(r rune) (int, SymbolClass) {
	for n := 1; n <= 9; n++ {
		if numeralRunes[xiangqi.Red][n] == r {
			return n, ClassChineseNumeral
		}
		if numeralRunes[xiangqi.Black][n] == r {
			return n, ClassArabicNumeral
		}
	}
	return 0, ClassNone
}

func numeralSide(class SymbolClass) xiangqi.Side {
	switch class {
	case ClassChineseNumeral:
		return xiangqi.Red
	case ClassArabicNumeral:
		return xiangqi.Black
	default:
		return xiangqi.NoSide
	}
}

type glyph struct {
	kind xiangqi.PieceType
	side xiangqi.Side // NoSide：红黑通用，颜色由上下文决定
}

var pieceGlyphs = map[rune]glyph{
	'帥': {xiangqi.PieceKing, xiangqi.Red},
	'帅': {xiangqi.PieceKing, xiangqi.Red},
	'仕': {xiangqi.PieceAdvisor, xiangqi.Red},
	'相': {xiangqi.PieceElephant, xiangqi.Red},
	'俥': {xiangqi.PieceRook, xiangqi.Red},
	'傌': {xiangqi.PieceKnight, xiangqi.Red},
	'兵': {xiangqi.PiecePawn, xiangqi.Red},

	'將': {xiangqi.PieceKing, xiangqi.Black},
	'将': {xiangqi.PieceKing, xiangqi.Black},
	'士': {xiangqi.PieceAdvisor, xiangqi.Black},
	'象': {xiangqi.PieceElephant, xiangqi.Black},
	'砲': {xiangqi.PieceCannon, xiangqi.Black},
	'包': {xiangqi.PieceCannon, xiangqi.Black},
	'卒': {xiangqi.PiecePawn, xiangqi.Black},

	'车': {xiangqi.PieceRook, xiangqi.NoSide},
	'車': {xiangqi.PieceRook, xiangqi.NoSide},
	'马': {xiangqi.PieceKnight, xiangqi.NoSide},
	'馬': {xiangqi.PieceKnight, xiangqi.NoSide},
	'炮': {xiangqi.PieceCannon, xiangqi.NoSide},
}

// 输出用的简体字形
var outputGlyphs = [2][8]rune{
	xiangqi.Red: {
		xiangqi.PieceRook: '车', xiangqi.PieceKnight: '马', xiangqi.PieceCannon: '炮',
		xiangqi.PieceElephant: '相', xiangqi.PieceAdvisor: '仕', xiangqi.PieceKing: '帅', xiangqi.PiecePawn: '兵',
	},
	xiangqi.Black: {
		xiangqi.PieceRook: '车', xiangqi.PieceKnight: '马', xiangqi.PieceCannon: '炮',
		xiangqi.PieceElephant: '象', xiangqi.PieceAdvisor: '士', xiangqi.PieceKing: '将', xiangqi.PiecePawn: '卒',
	},
}

// Glyph returns the simplified character used when writing records.
func Glyph(pc xiangqi.Piece) rune {
	side, pt := pc.Side(), pc.Type()
	if side == xiangqi.NoSide || pt == xiangqi.PieceNone {
		return 0
	}
	return outputGlyphs[side][pt]
}

var ordinalRunes = map[rune]Ordinal{
	runeFront:  OrdFront,
	runeMiddle: OrdMiddle,
	runeBack:   OrdBack,
	'二':        OrdSecond,
	'三':        OrdThird,
	'四':        OrdFourth,
	'五':        OrdFifth,
	'2':        OrdSecond,
	'3':        OrdThird,
	'4':        OrdFourth,
	'5':        OrdFifth,
}

var directionRunes = map[rune]Direction{
	runeForward:    Forward,
	runeBackward:   Backward,
	runeHorizontal: Horizontal,
}

// 繁体及异体字归一
var glyphFolder = strings.NewReplacer(
	"進", "进",
	"後", "后",
)

// normalize folds full-width digits and variant characters and trims the
// surrounding white space.
func normalize(record string) string {
	s := width.Narrow.String(record)
	return glyphFolder.Replace(strings.TrimSpace(s))
}
