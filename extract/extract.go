// Package extract turns raw input documents into the plain text that gets
// rasterized: art is located inside markup, inline tags are dropped,
// character references are decoded and legacy code pages are converted.
package extract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoArt is returned when a markup document holds no <pre> block.
var ErrNoArt = errors.New("no art found")

// preBlock is the content of one <pre> element.
type preBlock struct {
	raw  strings.Builder // inner markup as written
	text strings.Builder // text only, character references decoded
}

// findPre tokenizes doc and returns the first <pre> element whose class list
// holds "ascii", or the first <pre> element if none does. Only text tokens
// reach the block's text: a '<' that does not open a tag stays text.
func findPre(doc string) (*preBlock, error) {
	z := html.NewTokenizer(strings.NewReader(doc))
	var (
		first, cur *preBlock
		ascii      bool
		depth      int
	)
	for {
		tt := z.Next()
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			if first == nil {
				return nil, ErrNoArt
			}
			return first, nil
		case html.StartTagToken, html.EndTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "pre" {
				break
			}
			if tt == html.StartTagToken {
				depth++
				if depth == 1 {
					cur, ascii = &preBlock{}, hasAttr && hasClass(z, "ascii")
					continue
				}
				break
			}
			if depth == 0 {
				break
			}
			depth--
			if depth == 0 {
				if ascii {
					return cur, nil
				}
				if first == nil {
					first = cur
				}
				cur = nil
				continue
			}
		}
		if cur == nil {
			continue
		}
		cur.raw.WriteString(raw)
		if tt == html.TextToken {
			cur.text.Write(z.Text())
		}
	}
}

// hasClass reports whether the current tag's class attribute lists class.
func hasClass(z *html.Tokenizer, class string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "class" && slices.ContainsFunc(strings.Fields(string(val)), func(c string) bool {
			return strings.EqualFold(c, class)
		}) {
			return true
		}
		if !more {
			return false
		}
	}
}

// Find returns the raw content of the first <pre class="ascii"> block, or of
// the first <pre> block if there is none. Nothing inside the block is
// touched.
func Find(doc string) (string, error) {
	pre, err := findPre(doc)
	if err != nil {
		return "", err
	}
	return pre.raw.String(), nil
}

// Markup extracts the art from doc and returns it as plain text. Inline tags
// inside the block (links, spans) are removed and character references are
// decoded. Line breaks are normalized to \n and a newline directly after the
// opening tag is dropped, the same as a browser does.
func Markup(doc string) (string, error) {
	pre, err := findPre(doc)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(pre.text.String(), "\n"), nil
}

// Lines splits text into rows. A trailing \r is removed from every row and a
// final line terminator does not start an extra empty row.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsMarkupPath reports whether path names a markup document.
func IsMarkupPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// codePages covers the DOS code pages art is commonly saved in, which
// htmlindex does not know about.
var codePages = map[string]encoding.Encoding{
	"cp437":  charmap.CodePage437,
	"ibm437": charmap.CodePage437,
	"437":    charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"ibm850": charmap.CodePage850,
	"850":    charmap.CodePage850,
	"cp852":  charmap.CodePage852,
	"cp855":  charmap.CodePage855,
	"cp858":  charmap.CodePage858,
	"cp862":  charmap.CodePage862,
	"cp866":  charmap.CodePage866,
}

// Encoding looks up a character set by name. The empty name means UTF-8.
// Besides the WHATWG labels known to htmlindex (latin1, windows-1252,
// shift_jis, ...) the DOS code pages cp437, cp850 and friends are accepted.
func Encoding(name string) (encoding.Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	}
	if e, ok := codePages[n]; ok {
		return e, nil
	}
	e, err := htmlindex.Get(n)
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", name, err)
	}
	return e, nil
}

// Decode reads all of r and converts it from charset to UTF-8.
func Decode(r io.Reader, charset string) (string, error) {
	enc, err := Encoding(charset)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
