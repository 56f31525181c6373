package xwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/wordaddr/pkg/codec/xbits"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

func TestDiffuseUndiffuseInverse(t *testing.T) {
	for _, capBits := range []int{capV4, capShort, capMedium, capFull} {
		buf, err := xbits.New(capBits)
		require.NoError(t, err)
		// 填充一个非平凡位型
		for buf.Len() < capBits {
			w := capBits - buf.Len()
			if w > 24 {
				w = 24
			}
			require.NoError(t, buf.Append(uint64(0xA5F0C3)&(1<<w-1), w))
		}
		want := make([]uint64, 0, 3)
		for off := 0; off < capBits; off += 48 {
			v, err := buf.ReadAt(off, min(48, capBits-off))
			require.NoError(t, err)
			want = append(want, v)
		}

		require.NoError(t, diffuse(buf))
		require.NoError(t, undiffuse(buf))

		for i, off := 0, 0; off < capBits; i, off = i+1, off+48 {
			v, err := buf.ReadAt(off, min(48, capBits-off))
			require.NoError(t, err)
			assert.Equal(t, want[i], v, "cap %d offset %d", capBits, off)
		}
	}
}

// TestDiffuseChangesBits 扩散确实改变了位型（不是恒等）。
func TestDiffuseChangesBits(t *testing.T) {
	buf, err := xbits.New(capV4)
	require.NoError(t, err)
	require.NoError(t, buf.Append(0xC0A8010101BB, 48))
	before, _ := buf.ReadAt(0, 48)
	require.NoError(t, diffuse(buf))
	after, _ := buf.ReadAt(0, 48)
	assert.NotEqual(t, before, after)
}

func TestPlanLayout(t *testing.T) {
	tests := []struct {
		in      string
		cat     xaddr.Category
		words   int
		payload int
	}{
		{"[::1]:80", xaddr.CategoryLoopback, WordsShort, 19},
		{"[::]:80", xaddr.CategoryUnspecified, WordsShort, 19},
		{"[fe80::1%2]:22", xaddr.CategoryLinkLocal, WordsMedium, 107},
		{"[fc00:a:b:c::]:1", xaddr.CategoryUniqueLocal, WordsMedium, 76},
		{"[2001:470::5]:0", xaddr.CategoryGlobalCommon, WordsMedium, 91},
		{"[2001:db8::2]:1", xaddr.CategoryDocumentation, WordsFull, 144},
		{"[ff02::fb]:5353", xaddr.CategoryMulticast, WordsFull, 144},
		{"[2400:cb00::1]:443", xaddr.CategoryGlobalFull, WordsFull, 144},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cat, words, payload, err := planLayout(xaddr.MustParseEndpoint(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.cat, cat)
			assert.Equal(t, tt.words, words)
			assert.Equal(t, tt.payload, payload)

			// 净荷必须装得进布局容量
			assert.LessOrEqual(t, payload, words*bitsPerWord)
		})
	}
}

// mutateEncoded 复刻 encode 的打包流程，但允许在扩散前改写任意一位，
// 用于构造"带病"词序列验证解码侧的校验。
func mutateEncoded(t *testing.T, c *Codec, fill func(*xbits.Buffer), capBits, flipBit int) []string {
	t.Helper()

	buf, err := xbits.New(capBits)
	require.NoError(t, err)
	fill(buf)
	require.NoError(t, padToCapacity(buf))

	if flipBit >= 0 {
		v, err := buf.ReadAt(flipBit, 1)
		require.NoError(t, err)
		require.NoError(t, buf.WriteAt(flipBit, v^1, 1))
	}

	require.NoError(t, diffuse(buf))
	words, err := c.emitWords(buf, capBits/bitsPerWord)
	require.NoError(t, err)
	return words
}

// TestPaddingStrict 翻转任一填充位都必须被解码拒绝。
func TestPaddingStrict(t *testing.T) {
	c := Default()

	// 6 词 loopback：净荷 19 位，填充 [19, 72)
	fillShort := func(buf *xbits.Buffer) {
		require.NoError(t, appendAll(buf,
			field{uint64(xaddr.CategoryLoopback), tagBits},
			field{80, portBits},
		))
	}
	for bit := 19; bit < capShort; bit++ {
		words := mutateEncoded(t, c, fillShort, capShort, bit)
		_, err := c.DecodeWords(words)
		assert.ErrorIs(t, err, ErrPaddingNotZero, "pad bit %d", bit)
	}

	// 9 词 unique-local：净荷 76 位，填充 [76, 108)
	fillULA := func(buf *xbits.Buffer) {
		require.NoError(t, appendAll(buf,
			field{uint64(xaddr.CategoryUniqueLocal), tagBits},
			field{0x00123456789abcd, ulaBits},
			field{443, portBits},
		))
	}
	for bit := 76; bit < capMedium; bit++ {
		words := mutateEncoded(t, c, fillULA, capMedium, bit)
		_, err := c.DecodeWords(words)
		assert.ErrorIs(t, err, ErrPaddingNotZero, "pad bit %d", bit)
	}

	// 未翻转时两种布局都正常解码
	words := mutateEncoded(t, c, fillShort, capShort, -1)
	_, err := c.DecodeWords(words)
	assert.NoError(t, err)
	words = mutateEncoded(t, c, fillULA, capMedium, -1)
	_, err = c.DecodeWords(words)
	assert.NoError(t, err)
}

// TestUnknownTag 布局外的标签值必须被拒绝。
func TestUnknownTag(t *testing.T) {
	c := Default()

	// 6 词布局只接受标签 0/1
	for _, tag := range []uint64{2, 3, 4, 5, 6, 7} {
		words := mutateEncoded(t, c, func(buf *xbits.Buffer) {
			require.NoError(t, appendAll(buf, field{tag, tagBits}, field{80, portBits}))
		}, capShort, -1)
		_, err := c.DecodeWords(words)
		assert.ErrorIs(t, err, ErrUnknownCategory, "tag %d", tag)
	}

	// 9 词布局只接受标签 2/3/5
	for _, tag := range []uint64{0, 1, 4, 6, 7} {
		words := mutateEncoded(t, c, func(buf *xbits.Buffer) {
			require.NoError(t, appendAll(buf, field{tag, tagBits}, field{0, ifaceBits}))
		}, capMedium, -1)
		_, err := c.DecodeWords(words)
		assert.ErrorIs(t, err, ErrUnknownCategory, "tag %d", tag)
	}

	// 9 词 global-common 的前缀索引越界
	words := mutateEncoded(t, c, func(buf *xbits.Buffer) {
		require.NoError(t, appendAll(buf,
			field{uint64(xaddr.CategoryGlobalCommon), tagBits},
			field{uint64(xaddr.CommonPrefixCount), prefixIndexBits},
			field{1, ifaceBits},
			field{53, portBits},
		))
	}, capMedium, -1)
	_, err := c.DecodeWords(words)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

// TestDiffusionSpread 相邻端点（单比特差异）的词序列至少两词不同。
func TestDiffusionSpread(t *testing.T) {
	c := Default()

	diffCount := func(a, b []string) int {
		require.Equal(t, len(a), len(b))
		n := 0
		for i := range a {
			if a[i] != b[i] {
				n++
			}
		}
		return n
	}

	// IPv4：对两个基准端点翻转全部 48 个位
	for _, base := range []string{"192.168.1.1:443", "8.8.8.8:53"} {
		ep := xaddr.MustParseEndpoint(base)
		v4, _ := xaddr.AddrToUint32(ep.Addr)
		packed := uint64(v4)<<16 | uint64(ep.Port)
		baseWords, err := c.EncodeWords(ep)
		require.NoError(t, err)

		for bit := 0; bit < 48; bit++ {
			flipped := packed ^ (1 << uint(bit))
			ep2 := xaddr.Endpoint{
				Addr: xaddr.AddrFromUint32(uint32(flipped >> 16)),
				Port: uint16(flipped & 0xFFFF),
			}
			words, err := c.EncodeWords(ep2)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, diffCount(baseWords, words), 2, "%s flip bit %d", base, bit)
		}
	}

	// IPv6 全形式：翻转地址低 64 位与端口的每一位
	ep := xaddr.MustParseEndpoint("[2001:db8:85a3::8a2e:370:7334]:8080")
	baseWords, err := c.EncodeWords(ep)
	require.NoError(t, err)
	hi, lo, _ := xaddr.AddrHalves(ep.Addr)
	for bit := 0; bit < 64; bit++ {
		ep2 := ep
		ep2.Addr = xaddr.AddrFromHalves(hi, lo^(1<<uint(bit)))
		words, err := c.EncodeWords(ep2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, diffCount(baseWords, words), 2, "lo bit %d", bit)
	}
	for bit := 0; bit < 16; bit++ {
		ep2 := ep
		ep2.Port = ep.Port ^ 1<<uint(bit)
		words, err := c.EncodeWords(ep2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, diffCount(baseWords, words), 2, "port bit %d", bit)
	}

	// 6 词布局：翻转端口每一位
	ep = xaddr.MustParseEndpoint("[::1]:80")
	baseWords, err = c.EncodeWords(ep)
	require.NoError(t, err)
	for bit := 0; bit < 16; bit++ {
		ep2 := ep
		ep2.Port = ep.Port ^ 1<<uint(bit)
		words, err := c.EncodeWords(ep2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, diffCount(baseWords, words), 2, "port bit %d", bit)
	}
}
