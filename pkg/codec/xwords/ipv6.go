package xwords

import (
	"fmt"
	"net/netip"

	"github.com/omeyang/wordaddr/pkg/codec/xbits"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

// linkLocalHi 是规范链路本地形态 fe80::/64 的高 64 位。
const linkLocalHi = uint64(0xfe80) << 48

// encodeV6 按类别布局打包 IPv6 端点，扩散后切词。
// 流序固定为：标签 · 地址位 · scope · 端口 · 零填充（12 词全形式无标签、无填充）。
func (c *Codec) encodeV6(ep xaddr.Endpoint) ([]string, error) {
	cat, words, _, err := planLayout(ep)
	if err != nil {
		return nil, err
	}

	buf, err := xbits.New(words * bitsPerWord)
	if err != nil {
		return nil, err
	}
	hi, lo, _ := xaddr.AddrHalves(ep.Addr)

	switch words {
	case WordsShort:
		// Loopback / Unspecified：地址由标签唯一确定，只承载端口
		if err := appendAll(buf,
			field{uint64(cat), tagBits},
			field{uint64(ep.Port), portBits},
		); err != nil {
			return nil, err
		}

	case WordsMedium:
		switch cat {
		case xaddr.CategoryLinkLocal:
			err = appendAll(buf,
				field{uint64(cat), tagBits},
				field{lo, ifaceBits},
				field{uint64(ep.Scope), scopeBits},
				field{uint64(ep.Port), portBits},
			)
		case xaddr.CategoryUniqueLocal:
			err = appendAll(buf,
				field{uint64(cat), tagBits},
				field{hi & (1<<ulaBits - 1), ulaBits},
				field{uint64(ep.Port), portBits},
			)
		case xaddr.CategoryGlobalCommon:
			idx, ok := xaddr.CommonPrefixIndex(ep.Addr)
			if !ok {
				return nil, fmt.Errorf("xwords: categorizer/prefix table disagree on %s", ep.Addr)
			}
			err = appendAll(buf,
				field{uint64(cat), tagBits},
				field{uint64(idx), prefixIndexBits},
				field{lo, ifaceBits},
				field{uint64(ep.Port), portBits},
			)
		}
		if err != nil {
			return nil, err
		}

	case WordsFull:
		// 全形式：128 位地址加端口恰好填满，无标签无填充
		if err := appendAll(buf,
			field{hi, 64},
			field{lo, 64},
			field{uint64(ep.Port), portBits},
		); err != nil {
			return nil, err
		}
	}

	if err := padToCapacity(buf); err != nil {
		return nil, err
	}
	if err := diffuse(buf); err != nil {
		return nil, err
	}
	return c.emitWords(buf, words)
}

// decodeV6 按词数派发到对应布局的逆过程。
func (c *Codec) decodeV6(indices []int) (xaddr.Endpoint, error) {
	buf, err := c.packIndices(indices, len(indices)*bitsPerWord)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	if err := undiffuse(buf); err != nil {
		return xaddr.Endpoint{}, err
	}

	switch len(indices) {
	case WordsShort:
		return decodeShort(buf)
	case WordsMedium:
		return decodeMedium(buf)
	default:
		return decodeFull(buf)
	}
}

// decodeShort 解码 6 词布局：标签 0/1，仅端口。
func decodeShort(buf *xbits.Buffer) (xaddr.Endpoint, error) {
	tag, err := buf.Read(tagBits)
	if err != nil {
		return xaddr.Endpoint{}, err
	}

	var addr netip.Addr
	switch xaddr.Category(tag) {
	case xaddr.CategoryLoopback:
		addr = netip.IPv6Loopback()
	case xaddr.CategoryUnspecified:
		addr = netip.IPv6Unspecified()
	default:
		return xaddr.Endpoint{}, fmt.Errorf("%w: tag %d in 6-word layout", ErrUnknownCategory, tag)
	}

	port, err := buf.Read(portBits)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	if err := checkPadding(buf); err != nil {
		return xaddr.Endpoint{}, err
	}
	return xaddr.Endpoint{Addr: addr, Port: uint16(port)}, nil
}

// decodeMedium 解码 9 词布局：标签 2/3/5。
func decodeMedium(buf *xbits.Buffer) (xaddr.Endpoint, error) {
	tag, err := buf.Read(tagBits)
	if err != nil {
		return xaddr.Endpoint{}, err
	}

	var ep xaddr.Endpoint
	switch xaddr.Category(tag) {
	case xaddr.CategoryLinkLocal:
		lo, err := buf.Read(ifaceBits)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		scope, err := buf.Read(scopeBits)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		ep.Addr = xaddr.AddrFromHalves(linkLocalHi, lo)
		ep.Scope = uint32(scope)

	case xaddr.CategoryUniqueLocal:
		ula, err := buf.Read(ulaBits)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		ep.Addr = xaddr.AddrFromHalves(uint64(ulaPrefix7)<<ulaBits|ula, 0)

	case xaddr.CategoryGlobalCommon:
		idx, err := buf.Read(prefixIndexBits)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		if idx >= uint64(xaddr.CommonPrefixCount) {
			return xaddr.Endpoint{}, fmt.Errorf("%w: prefix index %d", ErrUnknownCategory, idx)
		}
		lo, err := buf.Read(ifaceBits)
		if err != nil {
			return xaddr.Endpoint{}, err
		}
		ep.Addr = xaddr.AddrFromHalves(xaddr.CommonPrefixAt(int(idx)), lo)

	default:
		return xaddr.Endpoint{}, fmt.Errorf("%w: tag %d in 9-word layout", ErrUnknownCategory, tag)
	}

	port, err := buf.Read(portBits)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	ep.Port = uint16(port)
	if err := checkPadding(buf); err != nil {
		return xaddr.Endpoint{}, err
	}
	return ep, nil
}

// decodeFull 解码 12 词全形式：每个 144 位值都是合法端点。
func decodeFull(buf *xbits.Buffer) (xaddr.Endpoint, error) {
	hi, err := buf.Read(64)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	lo, err := buf.Read(64)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	port, err := buf.Read(portBits)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	return xaddr.Endpoint{
		Addr: xaddr.AddrFromHalves(hi, lo),
		Port: uint16(port),
	}, nil
}

// field 是 appendAll 的 (值, 位宽) 对。
type field struct {
	value uint64
	width int
}

func appendAll(buf *xbits.Buffer, fields ...field) error {
	for _, f := range fields {
		if err := buf.Append(f.value, f.width); err != nil {
			return err
		}
	}
	return nil
}
