package codon

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

//go:embed gc.prt
var builtinPrt string

type parseMode int

const (
	modeNormal parseMode = iota
	modeTable
	modeAssign
	modeList
	modeElement
	modeElementValue
	modeElementComma
	modeListComma
	modeEnd
)

type rawTable struct {
	id                int
	names             []string
	ncbieaa, sncbieaa string
	base              [3]string
}

func (r rawTable) build() (*Table, error) {
	b1, b2, b3 := r.base[0], r.base[1], r.base[2]
	if b1 == "" && b2 == "" && b3 == "" {
		b1, b2, b3 = standardBases()
	}
	return NewTable(r.id, r.names, r.ncbieaa, r.sncbieaa, b1, b2, b3)
}

func isWord(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitASN1 tokenizes the ASN.1 value notation used by gc.prt. Comments
// starting with -- are returned whole, up to the end of the line.
func splitASN1(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	for ; i < len(data) && unicode.IsSpace(rune(data[i])); i++ {
	}
	data = data[i:]
	advance := i
	if len(data) == 0 {
		return advance, nil, nil
	}

	more := func() (int, []byte, error) {
		if atEOF {
			return 0, nil, io.ErrUnexpectedEOF
		}
		return advance, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			return more()
		}
		if data[1] == '-' {
			a, t, err := bufio.ScanLines(data, atEOF)
			if a == 0 && t == nil {
				return advance, nil, err
			}
			return advance + a, t, err
		}
	case ':':
		if len(data) < 3 {
			return more()
		}
		if data[1] == ':' && data[2] == '=' {
			return advance + 3, data[:3], nil
		}
		return 0, nil, fmt.Errorf("unexpected %q after ':'", data[1])
	case '"':
		for j := 1; j < len(data); j++ {
			if data[j] == '"' {
				return advance + j + 1, data[:j+1], nil
			}
		}
		if atEOF {
			return 0, nil, errors.New("unterminated string literal")
		}
		return advance, nil, nil
	case '{', '}', ',':
		return advance + 1, data[:1], nil
	}
	if isWord(data[0]) {
		j := 1
		for ; j < len(data) && isWord(data[j]); j++ {
		}
		if j == len(data) && !atEOF {
			return advance, nil, nil
		}
		return advance + j, data[:j], nil
	}
	return 0, nil, fmt.Errorf("unexpected character %q", data[0])
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got %s", s)
	}
	return strings.Join(strings.Fields(s[1:len(s)-1]), " "), nil
}

// baseRow recognizes the "-- BaseN <codons>" comment rows.
func baseRow(comment string) (int, string, bool) {
	f := strings.Fields(strings.TrimPrefix(comment, "--"))
	if len(f) != 2 || !strings.HasPrefix(f[0], "Base") {
		return 0, "", false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(f[0], "Base"))
	if err != nil || n < 1 || n > 3 {
		return 0, "", false
	}
	return n - 1, f[1], true
}

// ParseTables reads every table from an NCBI gc.prt document.
func ParseTables(r io.Reader) ([]*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(splitASN1)

	var (
		out   []*Table
		cur   rawTable
		field string
		mode  = modeNormal
	)
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrMalformedTable, fmt.Sprintf(format, args...))
	}

	for sc.Scan() {
		tok := sc.Text()
		if strings.HasPrefix(tok, "--") {
			if mode == modeElement || mode == modeElementComma {
				if i, row, ok := baseRow(tok); ok {
					cur.base[i] = row
				}
			}
			continue
		}

		switch mode {
		case modeNormal:
			if tok != "Genetic-code-table" {
				return nil, fail("expected Genetic-code-table, got %q", tok)
			}
			mode = modeTable
		case modeTable:
			if tok != "::=" {
				return nil, fail("expected ::=, got %q", tok)
			}
			mode = modeAssign
		case modeAssign:
			if tok != "{" {
				return nil, fail("expected {, got %q", tok)
			}
			mode = modeList
		case modeList:
			switch tok {
			case "{":
				cur = rawTable{}
				mode = modeElement
			case "}":
				mode = modeEnd
			default:
				return nil, fail("expected { or }, got %q", tok)
			}
		case modeElement:
			field = tok
			mode = modeElementValue
		case modeElementValue:
			switch field {
			case "name":
				s, err := unquote(tok)
				if err != nil {
					return nil, fail("%v", err)
				}
				cur.names = append(cur.names, s)
			case "id":
				id, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fail("bad id %q", tok)
				}
				cur.id = id
			case "ncbieaa", "sncbieaa":
				s, err := unquote(tok)
				if err != nil {
					return nil, fail("%v", err)
				}
				if field == "ncbieaa" {
					cur.ncbieaa = s
				} else {
					cur.sncbieaa = s
				}
			}
			mode = modeElementComma
		case modeElementComma:
			switch tok {
			case ",":
				mode = modeElement
			case "}":
				t, err := cur.build()
				if err != nil {
					return nil, err
				}
				out = append(out, t)
				mode = modeListComma
			default:
				return nil, fail("expected , or }, got %q", tok)
			}
		case modeListComma:
			switch tok {
			case ",":
				mode = modeList
			case "}":
				mode = modeEnd
			default:
				return nil, fail("expected , or }, got %q", tok)
			}
		case modeEnd:
			return nil, fail("trailing token %q", tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if mode != modeEnd {
		return nil, fail("unexpected end of input")
	}
	return out, nil
}

// LoadTables parses the gc.prt file at path.
func LoadTables(path string) ([]*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tables, err := ParseTables(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}

var builtin = sync.OnceValues(func() ([]*Table, error) {
	return ParseTables(strings.NewReader(builtinPrt))
})

// Builtin returns the tables compiled into the binary.
func Builtin() []*Table {
	t, err := builtin()
	if err != nil {
		panic("codon: builtin gc.prt: " + err.Error())
	}
	return t
}

// Standard returns NCBI table 1 with the start codons narrowed to
// DefaultStartCodons.
func Standard() *Table {
	t, err := Lookup(Builtin(), StandardName)
	if err != nil {
		panic("codon: " + err.Error())
	}
	return t.WithStarts(DefaultStartCodons).WithStops(DefaultStopCodons)
}
