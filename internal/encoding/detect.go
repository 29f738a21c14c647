package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	UTF8        = "UTF-8"
	UTF8BOM     = "UTF-8 BOM"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// legacy maps chardet charset names to decoders. Spreadsheet exports from
// Vietnamese Windows installs are usually windows-1258, which chardet
// reports as one of its Latin neighbours.
var legacy = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-2":   charmap.ISO8859_2,
	"windows-1250": charmap.Windows1250,
	"ISO-8859-5":   charmap.ISO8859_5,
	"windows-1251": charmap.Windows1251,
	"KOI8-R":       charmap.KOI8R,
	"ISO-8859-9":   charmap.ISO8859_9,
	"windows-1258": charmap.Windows1258,
}

// NewUTF8Reader detects the encoding of the input and returns a reader that
// decodes the content to UTF-8, together with the detected charset name.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. valid UTF-8 passes through
//  3. chardet heuristics over the legacy table
//  4. windows-1252
func NewUTF8Reader(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, UTF8BOM, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return decode(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), UTF16LE, nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return decode(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), UTF16BE, nil
	case utf8.Valid(buf):
		return br, UTF8, nil
	}

	result, err := chardet.NewTextDetector().DetectBest(buf)
	if err == nil {
		if result.Charset == UTF8 {
			return br, UTF8, nil
		}

		if enc, ok := legacy[result.Charset]; ok {
			return decode(br, enc), result.Charset, nil
		}
	}

	return decode(br, charmap.Windows1252), Windows1252, nil
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}
