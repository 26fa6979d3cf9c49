package dispatch

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"unicode/utf8"
)

// Location is a source position of an entry-point call.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether l carries no position.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Caller returns the location of the call skip frames above Caller's caller.
// entry is the name of the function being called at that location (for
// example "Infof"); the column is where the call expression starts on its
// line, or 0 when the source file cannot be read.
func Caller(skip int, entry string) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{
		File:   shortenPath(file),
		Line:   line,
		Column: callColumn(sourceLine(file, line), entry),
	}
}

// shortenPath keeps the last directory and the file name.
func shortenPath(file string) string {
	i := strings.LastIndexByte(file, '/')
	if i < 0 {
		return file
	}
	j := strings.LastIndexByte(file[:i], '/')
	return file[j+1:]
}

// callColumn returns the 1-based column at which the selector expression
// ending in entry+"(" starts, e.g. the "k" of "keenlog.Infof(". Only calls
// outside any parentheses, string literals and trailing comments count; when
// several remain, the last one on the line wins.
func callColumn(src, entry string) int {
	if src == "" || entry == "" {
		return 0
	}
	needle := entry + "("
	found, depth := -1, 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '"', '`', '\'':
			i = skipQuoted(src, i)
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if strings.HasPrefix(src[i:], "//") {
				i = len(src)
			}
		default:
			if depth == 0 && strings.HasPrefix(src[i:], needle) && (i == 0 || !isIdentByte(src[i-1])) {
				found = i
			}
		}
	}
	if found < 0 {
		return 0
	}
	for found > 0 && isSelectorByte(src[found-1]) {
		found--
	}
	return utf8.RuneCountInString(src[:found]) + 1
}

// skipQuoted returns the index of the quote closing the literal opened at i.
func skipQuoted(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch {
		case src[j] == '\\' && quote != '`':
			j++
		case src[j] == quote:
			return j
		}
	}
	return len(src)
}

func isIdentByte(c byte) bool {
	return c != '.' && isSelectorByte(c)
}

func isSelectorByte(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// sources caches source files by path; a nil entry marks an unreadable file.
var sources sync.Map

func sourceLine(file string, line int) string {
	cached, ok := sources.Load(file)
	if !ok {
		cached, _ = sources.LoadOrStore(file, readLines(file))
	}
	lines, _ := cached.([]string)
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func readLines(file string) []string {
	f, err := os.Open(file)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanner.Err() != nil {
		return nil
	}
	return lines
}

// Tracer captures the current goroutine's stack.
type Tracer interface {
	Capture() string
}

// StackTracer captures stacks with runtime/debug.
type StackTracer struct{}

// Capture implements Tracer.
func (StackTracer) Capture() string {
	return strings.TrimRight(string(debug.Stack()), "\n")
}

// LocationOf returns the location of file:line with no column.
func LocationOf(file string, line int) Location {
	return Location{File: shortenPath(file), Line: line}
}
