package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/estate/internal/encoding"
)

func readAll(t *testing.T, input []byte) (string, string) {
	t.Helper()

	r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got), charset
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Tòa nhà;Số phòng;Diện tích\nTòa A;101;45,5\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// Windows-1252 encoded "Descrição;Área\n": ç = 0xE7, ã = 0xE3, Á = 0xC1.
	latin1Bytes := []byte{
		'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', ';',
		0xC1, 'r', 'e', 'a', '\n',
	}

	got, _ := readAll(t, latin1Bytes)
	assert.Equal(t, "Descrição;Área\n", got)
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Building;Room;Area\n")...)

	got, charset := readAll(t, input)
	assert.Equal(t, "Building;Room;Area\n", got)
	assert.Equal(t, encoding.UTF8BOM, charset)
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("Tòa nhà;Số phòng\n"))
	require.NoError(t, err)

	got, charset := readAll(t, encoded)
	assert.Equal(t, "Tòa nhà;Số phòng\n", got)
	assert.Equal(t, encoding.UTF16LE, charset)
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	got, charset := readAll(t, nil)
	assert.Empty(t, got)
	assert.Equal(t, encoding.UTF8, charset)
}
