package record

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Decode returns the text of a record file. UTF-8 (with or without BOM) is
// used as is; anything else is read as GB18030, which covers GBK and GB2312
// files written by older Chinese software.
func Decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), simplifiedchinese.GB18030.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("failed to decode GB18030 record")
	}
	return string(decoded), nil
}

// ReadFile reads and parses one record file.
func ReadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	g, err := Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	g.Source = path
	return g, nil
}
