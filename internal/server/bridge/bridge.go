// Command bridge builds a C shared library (go build -buildmode=c-shared)
// that lets C and C++ programs resolve and format traditional records.
// Return codes are 0 on success, otherwise the notation.Kind of the failure;
// -1 stands for an unreadable FEN or buffer problem.
package main

/*
#include <stdint.h>
*/
import "C"
import (
	"errors"
	"unsafe"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

const codeBadInput = -1

func decodeFEN(fen *C.char) (*xiangqi.Position, bool) {
	if fen == nil {
		return xiangqi.NewInitialPosition(), true
	}
	s := C.GoString(fen)
	if s == "" {
		return xiangqi.NewInitialPosition(), true
	}
	pos, err := xiangqi.DecodePosition(s)
	return pos, err == nil
}

func errorCode(err error) C.int {
	var ne *notation.Error
	if errors.As(err, &ne) {
		return C.int(ne.Kind)
	}
	return codeBadInput
}

//export XqResolve
func XqResolve(fen *C.char, record *C.char, from *C.int, to *C.int) C.int {
	pos, ok := decodeFEN(fen)
	if !ok || record == nil {
		return codeBadInput
	}
	mv, err := notation.Resolve(C.GoString(record), pos)
	if err != nil {
		return errorCode(err)
	}
	if from != nil {
		*from = C.int(mv.From)
	}
	if to != nil {
		*to = C.int(mv.To)
	}
	return 0
}

// XqFormat 把记谱以 UTF-8 写入 out（含结尾 0），out 至少 13 字节
//
//export XqFormat
func XqFormat(fen *C.char, from, to C.int, out *C.char, outLen C.int) C.int {
	pos, ok := decodeFEN(fen)
	if !ok || out == nil {
		return codeBadInput
	}
	rec, err := notation.Format(xiangqi.Move{From: int(from), To: int(to)}, pos)
	if err != nil {
		return errorCode(err)
	}
	if len(rec)+1 > int(outLen) {
		return codeBadInput
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(outLen))
	copy(buf, rec)
	buf[len(rec)] = 0
	return 0
}

func main() {}
