// Cfind locates or counts occurrences of a needle in each input line,
// addressing by codepoint so that emoji and CJK text index correctly.
//
//	cfind [-c] [-start n] [-end n] needle [file ...]
//
// Without -c, each matching line is printed with a marker row under the
// first match, aligned by terminal display width. With -c, lines with a
// nonzero count print as name:line: count. Bounds follow the library
// rules: negative counts back from the end of the line, out of range
// clamps.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rjkroege/cstring"
)

var countOnly = flag.Bool("c", false, "print match counts instead of marked lines")
var start = flag.Int("start", 0, "first codepoint of the per-line search range")
var end = flag.Int("end", -1, "codepoint just past the search range; -1 means end of line")
var debug = flag.Bool("d", false, "set for verbose debugging")

func main() {
	flag.Parse()
	if !*debug {
		log.SetOutput(io.Discard)
	}
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cfind [-c] [-start n] [-end n] needle [file ...]")
		os.Exit(2)
	}
	needle := flag.Arg(0)
	if _, err := cstring.New(needle); err != nil {
		fmt.Fprintf(os.Stderr, "cfind: needle: %v\n", err)
		os.Exit(2)
	}
	log.Printf("needle %q start %d end %d", needle, *start, *end)

	files := flag.Args()[1:]
	if len(files) == 0 {
		scan(os.Stdin, "<stdin>", needle)
		return
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cfind: %v\n", err)
			os.Exit(1)
		}
		scan(f, name, needle)
		f.Close()
	}
}

// span builds the optional bounds for the library calls. The -1 end
// default means "no end bound" rather than the library's
// one-before-the-end wrap.
func span() []int {
	if *end == -1 {
		return []int{*start}
	}
	return []int{*start, *end}
}

func scan(r io.Reader, name, needle string) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line, err := cstring.New(sc.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "cfind: %s:%d: %v\n", name, lineno, err)
			continue
		}
		if *countOnly {
			if n := line.Count(needle, span()...); n > 0 {
				fmt.Printf("%s:%d: %d\n", name, lineno, n)
			}
			continue
		}
		i := line.Find(needle, span()...)
		if i < 0 {
			continue
		}
		prefix := fmt.Sprintf("%s:%d: ", name, lineno)
		fmt.Printf("%s%s\n", prefix, line)

		// Align the marker by display width, not codepoint count:
		// a wide character before the match shifts it two cells.
		pad := runewidth.StringWidth(prefix) + line.Slice(0, i).Width()
		marker := runewidth.StringWidth(needle)
		if marker < 1 {
			marker = 1
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", pad), strings.Repeat("^", marker))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "cfind: read %s: %v\n", name, err)
		os.Exit(1)
	}
}
