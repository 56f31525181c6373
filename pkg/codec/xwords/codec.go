package xwords

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/omeyang/wordaddr/pkg/codec/xbits"
	"github.com/omeyang/wordaddr/pkg/codec/xdict"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

// Codec 是端点 ↔ 词序列编解码器。
// 构建后只读，可任意并发使用；除共享词典外每次调用无共享状态。
type Codec struct {
	dict *xdict.Dictionary
}

// New 创建编解码器，缺省使用内置规范词典。
func New(opts ...Option) (*Codec, error) {
	c := &Codec{dict: xdict.Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var (
	defaultOnce  sync.Once
	defaultCodec *Codec
)

// Default 返回使用内置词典的共享编解码器单例。
func Default() *Codec {
	defaultOnce.Do(func() {
		defaultCodec, _ = New()
	})
	return defaultCodec
}

// Encode 把端点编码为规范字符串：全小写、单空格分隔。
func (c *Codec) Encode(ep xaddr.Endpoint) (string, error) {
	words, err := c.EncodeWords(ep)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// EncodeWords 把端点编码为词序列。
// 词数由地址族与类别决定：IPv4 恒 4 词，IPv6 为 6/9/12 词。
func (c *Codec) EncodeWords(ep xaddr.Endpoint) ([]string, error) {
	ep, err := ep.Normalize()
	if err != nil {
		return nil, err
	}

	switch ep.Family() {
	case xaddr.FamilyV4:
		return c.encodeV4(ep)
	case xaddr.FamilyV6:
		return c.encodeV6(ep)
	default:
		return nil, fmt.Errorf("%w: invalid address", xaddr.ErrMalformedAddress)
	}
}

// Decode 解析规范字符串并解码为端点。
//
// 输入大小写不敏感；词间分隔接受空白或 '.'（兼容旧输入），
// 首尾空白截除、内部连续空白折叠。词数决定布局派发。
func (c *Codec) Decode(s string) (xaddr.Endpoint, error) {
	return c.DecodeWords(Tokenize(s))
}

// DecodeWords 把词序列解码为端点。
func (c *Codec) DecodeWords(words []string) (xaddr.Endpoint, error) {
	switch len(words) {
	case WordsV4:
		indices, err := c.lookupAll(words)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		return c.decodeV4(indices)
	case WordsShort, WordsMedium, WordsFull:
		indices, err := c.lookupAll(words)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		return c.decodeV6(indices)
	default:
		return xaddr.Endpoint{}, fmt.Errorf("%w: got %d", ErrWrongWordCount, len(words))
	}
}

// Inspect 返回端点的布局信息（类别、词数、净荷位数、压缩比），
// 不产生词序列。
func (c *Codec) Inspect(ep xaddr.Endpoint) (Layout, error) {
	ep, err := ep.Normalize()
	if err != nil {
		return Layout{}, err
	}

	switch ep.Family() {
	case xaddr.FamilyV4:
		if ep.Flow != 0 || ep.Scope != 0 {
			return Layout{}, fmt.Errorf("%w: IPv4 endpoint carries neither flow nor scope", ErrNotEncodable)
		}
		return Layout{
			Family:       xaddr.FamilyV4,
			Words:        WordsV4,
			PayloadBits:  capV4,
			CapacityBits: capV4,
		}, nil
	case xaddr.FamilyV6:
		cat, words, payload, err := planLayout(ep)
		if err != nil {
			return Layout{}, err
		}
		capacity := words * bitsPerWord
		return Layout{
			Family:       xaddr.FamilyV6,
			Category:     cat,
			Words:        words,
			PayloadBits:  payload,
			CapacityBits: capacity,
			Ratio:        1 - float64(capacity)/float64(capFull),
		}, nil
	default:
		return Layout{}, fmt.Errorf("%w: invalid address", xaddr.ErrMalformedAddress)
	}
}

// Tokenize 把输入拆成词元：'.' 视同空白（兼容旧分隔符），
// 首尾空白截除，连续空白折叠。不做词典校验。
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
}

// lookupAll 把词批量换成词典索引；任一词不在表内即失败。
func (c *Codec) lookupAll(words []string) ([]int, error) {
	indices := make([]int, len(words))
	for i, w := range words {
		idx, err := c.dict.Index(w)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// packIndices 把 12 位索引序列装进容量为 capBits 的缓冲区。
func (c *Codec) packIndices(indices []int, capBits int) (*xbits.Buffer, error) {
	buf, err := xbits.New(capBits)
	if err != nil {
		return nil, err
	}
	for _, idx := range indices {
		if err := buf.Append(uint64(idx), bitsPerWord); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// emitWords 把填满的缓冲区切成 n 个 12 位索引并查词典。
func (c *Codec) emitWords(buf *xbits.Buffer, n int) ([]string, error) {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		idx, err := buf.Read(bitsPerWord)
		if err != nil {
			return nil, err
		}
		words[i] = c.dict.Word(int(idx))
	}
	return words, nil
}

// Encode 用共享编解码器编码端点。
func Encode(ep xaddr.Endpoint) (string, error) {
	return Default().Encode(ep)
}

// Decode 用共享编解码器解码规范字符串。
func Decode(s string) (xaddr.Endpoint, error) {
	return Default().Decode(s)
}
