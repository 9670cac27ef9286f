package notation

import "fmt"

// Kind is the machine-readable class of a notation failure.
type Kind int8

const (
	KindUnknown Kind = iota
	InvalidLength
	UnknownSymbol
	NoCandidate
	Ambiguous
	IllegalDirectionForPiece
	SameColumnHorizontalMove
	TargetOffBoard
	IllegalKnightTarget
	UnformattableMove
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "INVALID_LENGTH"
	case UnknownSymbol:
		return "UNKNOWN_SYMBOL"
	case NoCandidate:
		return "NO_CANDIDATE"
	case Ambiguous:
		return "AMBIGUOUS"
	case IllegalDirectionForPiece:
		return "ILLEGAL_DIRECTION_FOR_PIECE"
	case SameColumnHorizontalMove:
		return "SAME_COLUMN_HORIZONTAL_MOVE"
	case TargetOffBoard:
		return "TARGET_OFF_BOARD"
	case IllegalKnightTarget:
		return "ILLEGAL_KNIGHT_TARGET"
	case UnformattableMove:
		return "UNFORMATTABLE_MOVE"
	default:
		return "UNKNOWN"
	}
}

// Error is returned by Classify, Resolve and Format.
// Symbol is set for UnknownSymbol; Count carries the candidate count for
// Ambiguous and NoCandidate, and the rune count for InvalidLength.
type Error struct {
	Kind   Kind
	Record string
	Symbol rune
	Count  int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("notation %q: %d symbols, want 4", e.Record, e.Count)
	case UnknownSymbol:
		return fmt.Sprintf("notation %q: unknown symbol %q", e.Record, e.Symbol)
	case NoCandidate:
		return fmt.Sprintf("notation %q: no matching piece (%d candidates)", e.Record, e.Count)
	case Ambiguous:
		return fmt.Sprintf("notation %q: ambiguous, %d candidates", e.Record, e.Count)
	case IllegalDirectionForPiece:
		return fmt.Sprintf("notation %q: direction not allowed for this piece", e.Record)
	case SameColumnHorizontalMove:
		return fmt.Sprintf("notation %q: horizontal move to the same column", e.Record)
	case TargetOffBoard:
		return fmt.Sprintf("notation %q: target off board", e.Record)
	case IllegalKnightTarget:
		return fmt.Sprintf("notation %q: no knight landing on target column", e.Record)
	case UnformattableMove:
		return fmt.Sprintf("move %s cannot be written as a record", e.Record)
	default:
		return fmt.Sprintf("notation %q: error", e.Record)
	}
}

// Is matches by Kind, so errors.Is(err, ErrAmbiguous) holds for any count.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidLength            = &Error{Kind: InvalidLength}
	ErrUnknownSymbol            = &Error{Kind: UnknownSymbol}
	ErrNoCandidate              = &Error{Kind: NoCandidate}
	ErrAmbiguous                = &Error{Kind: Ambiguous}
	ErrIllegalDirectionForPiece = &Error{Kind: IllegalDirectionForPiece}
	ErrSameColumnHorizontalMove = &Error{Kind: SameColumnHorizontalMove}
	ErrTargetOffBoard           = &Error{Kind: TargetOffBoard}
	ErrIllegalKnightTarget      = &Error{Kind: IllegalKnightTarget}
	ErrUnformattableMove        = &Error{Kind: UnformattableMove}
)

func fail(kind Kind, record string) *Error {
	return &Error{Kind: kind, Record: record}
}

func failCount(kind Kind, record string, n int) *Error {
	return &Error{Kind: kind, Record: record, Count: n}
}

func unknownSymbol(record string, r rune) *Error {
	return &Error{Kind: UnknownSymbol, Record: record, Symbol: r}
}
