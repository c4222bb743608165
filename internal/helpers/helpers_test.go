package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esexpr/esexpr/internal/helpers"
)

func TestUTF16RoundTrip(t *testing.T) {
	for _, text := range []string{"", "abc", "été", "\U0001F600 smile"} {
		utf16 := helpers.StringToUTF16(text)
		assert.Equal(t, text, helpers.UTF16ToString(utf16))
		assert.True(t, helpers.UTF16EqualsString(utf16, text))
	}

	assert.Equal(t, []uint16{0xD83D, 0xDE00}, helpers.StringToUTF16("\U0001F600"))
	assert.False(t, helpers.UTF16EqualsString(helpers.StringToUTF16("ab"), "abc"))
}

func TestQuoteUTF16(t *testing.T) {
	assert.Equal(t, `"abc"`, helpers.QuoteUTF16(helpers.StringToUTF16("abc"), '"'))
	assert.Equal(t, `"a\"b'c"`, helpers.QuoteUTF16(helpers.StringToUTF16(`a"b'c`), '"'))
	assert.Equal(t, `'a"b\'c'`, helpers.QuoteUTF16(helpers.StringToUTF16(`a"b'c`), '\''))
	assert.Equal(t, `"\n\t\\\x00"`, helpers.QuoteUTF16([]uint16{'\n', '\t', '\\', 0}, '"'))
	assert.Equal(t, `"\uD800"`, helpers.QuoteUTF16([]uint16{0xD800}, '"'))
	assert.Equal(t, "\"\U0001F600\"", helpers.QuoteUTF16([]uint16{0xD83D, 0xDE00}, '"'))
}

func TestBitSet(t *testing.T) {
	bs := helpers.NewBitSet(20)
	assert.False(t, bs.HasBit(3))
	bs.SetBit(3)
	bs.SetBit(17)
	bs.SetBit(1000)
	assert.True(t, bs.HasBit(3))
	assert.True(t, bs.HasBit(17))
	assert.False(t, bs.HasBit(4))
	assert.False(t, bs.HasBit(1000))
	assert.Equal(t, 2, bs.Count())
}

func TestTypoDetector(t *testing.T) {
	detector := helpers.MakeTypoDetector([]string{"string", "number", "bigint"})

	corrected, ok := detector.MaybeCorrectTypo("strin")
	assert.True(t, ok)
	assert.Equal(t, "string", corrected)

	corrected, ok = detector.MaybeCorrectTypo("numbr")
	assert.True(t, ok)
	assert.Equal(t, "number", corrected)

	_, ok = detector.MaybeCorrectTypo("xyz")
	assert.False(t, ok)
}
