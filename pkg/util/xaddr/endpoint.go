package xaddr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Endpoint 是一个网络端点：IP 地址加 16 位端口。
//
// IPv6 端点可附带流标签（Flow，20 位）和链路本地 zone 索引（Scope）。
// 编码格式不承载流标签；Scope 仅在链路本地类别中承载（见 xwords）。
// Addr 不携带 netip zone 字符串，zone 信息统一存放在 Scope 字段，
// 保证 Endpoint 可直接用 == 比较。
type Endpoint struct {
	Addr  netip.Addr
	Port  uint16
	Flow  uint32
	Scope uint32
}

// Family 返回端点的地址族（IPv4-mapped IPv6 视为 IPv4）。
func (e Endpoint) Family() Family {
	return AddrFamily(e.Addr)
}

// Normalize 返回规范化端点：IPv4-mapped IPv6 Unmap 为纯 IPv4，
// 地址上残留的数字 zone 移入 Scope。
//
// 非数字 zone 无法在库层映射为索引（需要查询操作系统接口表），
// 返回 ErrMalformedAddress，由调用方先行解析。
func (e Endpoint) Normalize() (Endpoint, error) {
	if zone := e.Addr.Zone(); zone != "" {
		n, err := strconv.ParseUint(zone, 10, 32)
		if err != nil {
			return Endpoint{}, fmt.Errorf("%w: non-numeric zone %q", ErrMalformedAddress, zone)
		}
		if e.Scope == 0 {
			e.Scope = uint32(n)
		}
		e.Addr = e.Addr.WithZone("")
	}
	if e.Addr.Is4In6() {
		e.Addr = e.Addr.Unmap()
	}
	return e, nil
}

// ParseEndpoint 解析端点文本。
//
// 接受的写法：
//   - "192.168.1.1" / "192.168.1.1:443"
//   - "::1" / "[::1]:443"
//   - "fe80::1%2" / "[fe80::1%2]:22"（zone 必须是数字，移入 Scope）
//
// 缺省端口为 0。结果已经过 [Endpoint.Normalize]。
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Endpoint{}, fmt.Errorf("%w: empty input", ErrMalformedAddress)
	}

	var ep Endpoint
	if ap, err := netip.ParseAddrPort(s); err == nil {
		ep = Endpoint{Addr: ap.Addr(), Port: ap.Port()}
	} else if addr, err := netip.ParseAddr(s); err == nil {
		ep = Endpoint{Addr: addr}
	} else {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
	}
	return ep.Normalize()
}

// MustParseEndpoint 与 ParseEndpoint 相同，但失败时 panic。
// 仅用于测试和常量初始化。
func MustParseEndpoint(s string) Endpoint {
	ep, err := ParseEndpoint(s)
	if err != nil {
		panic(err)
	}
	return ep
}

// String 返回端点的标准文本形式。
//
//   - IPv4: "192.168.1.1:443"
//   - IPv6: "[::1]:443"
//   - 带 Scope 的 IPv6: "[fe80::1%2]:22"
//
// 端口恒显式输出（含 0），保证 ParseEndpoint(e.String()) == e。
func (e Endpoint) String() string {
	if !e.Addr.IsValid() {
		return "invalid"
	}
	addr := e.Addr
	if e.Scope != 0 {
		addr = addr.WithZone(strconv.FormatUint(uint64(e.Scope), 10))
	}
	return netip.AddrPortFrom(addr, e.Port).String()
}
