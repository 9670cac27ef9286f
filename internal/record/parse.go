// Package record reads game records written in traditional notation and
// replays them onto a board.
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Game is one parsed record file.
type Game struct {
	Source  string
	Headers map[string]string
	Moves   []string
	Result  string
}

// Header returns the value of key, or "" when absent.
func (g *Game) Header(key string) string {
	return g.Headers[key]
}

var (
	ErrUnterminatedComment = errors.New("unterminated comment")

	headerRe     = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)
	moveNumberRe = regexp.MustCompile(`^\d+\.+`)
)

var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Parse reads headers of the form [Key "Value"] followed by the move text.
// Move numbers, {comments} and a trailing result token are dropped.
func Parse(r io.Reader) (*Game, error) {
	g := &Game{Headers: make(map[string]string)}
	var body strings.Builder

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if m := headerRe.FindStringSubmatch(line); m != nil {
			g.Headers[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "[") {
			return nil, fmt.Errorf("line %d: malformed header %q", lineNo, line)
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	text, err := stripComments(body.String())
	if err != nil {
		return nil, err
	}
	for _, tok := range strings.Fields(text) {
		tok = moveNumberRe.ReplaceAllString(tok, "")
		if tok == "" {
			continue
		}
		if resultTokens[tok] {
			g.Result = tok
			break
		}
		g.Moves = append(g.Moves, tok)
	}
	if g.Result == "" {
		g.Result = g.Headers["Result"]
	}
	return g, nil
}

func stripComments(s string) (string, error) {
	var sb strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
			// 注释和前后着法之间补一个空白
			if depth == 0 {
				sb.WriteByte(' ')
			}
		case depth == 0:
			sb.WriteRune(r)
		}
	}
	if depth != 0 {
		return "", ErrUnterminatedComment
	}
	return sb.String(), nil
}

// Collect lists record files under root, sorted by path.
func Collect(root string) ([]string, error) {
	var files []string
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pgn", ".txt", ".xqr":
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
