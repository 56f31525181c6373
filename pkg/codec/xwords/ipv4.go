package xwords

import (
	"fmt"

	"github.com/omeyang/wordaddr/pkg/codec/xbits"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

// encodeV4 把 IPv4 端点打包为 48 位（地址 32 · 端口 16），
// 扩散后切成 4 个 12 位词典索引。
func (c *Codec) encodeV4(ep xaddr.Endpoint) ([]string, error) {
	if ep.Flow != 0 || ep.Scope != 0 {
		return nil, fmt.Errorf("%w: IPv4 endpoint carries neither flow nor scope", ErrNotEncodable)
	}
	v4, ok := xaddr.AddrToUint32(ep.Addr)
	if !ok {
		return nil, fmt.Errorf("%w: not an IPv4 address", xaddr.ErrMalformedAddress)
	}

	buf, err := xbits.New(capV4)
	if err != nil {
		return nil, err
	}
	if err := buf.Append(uint64(v4), 32); err != nil {
		return nil, err
	}
	if err := buf.Append(uint64(ep.Port), portBits); err != nil {
		return nil, err
	}
	if err := diffuse(buf); err != nil {
		return nil, err
	}
	return c.emitWords(buf, WordsV4)
}

// decodeV4 是 encodeV4 的逆：每个 48 位值都是合法端点，无语义拒绝。
func (c *Codec) decodeV4(indices []int) (xaddr.Endpoint, error) {
	buf, err := c.packIndices(indices, capV4)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	if err := undiffuse(buf); err != nil {
		return xaddr.Endpoint{}, err
	}

	v4, err := buf.Read(32)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	port, err := buf.Read(portBits)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	return xaddr.Endpoint{
		Addr: xaddr.AddrFromUint32(uint32(v4)),
		Port: uint16(port),
	}, nil
}
