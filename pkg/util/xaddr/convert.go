package xaddr

import (
	"encoding/binary"
	"net/netip"
)

// AddrToUint32 把 IPv4 地址转换为 uint32（大端）。
// IPv4-mapped IPv6 地址先 Unmap。非 IPv4 地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// AddrFromUint32 把 uint32（大端）转换为 IPv4 地址。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrHalves 把 IPv6 地址拆为高低两个 64 位（大端）。
// 非 IPv6 地址（含 IPv4-mapped）返回 (0, 0, false)。
func AddrHalves(addr netip.Addr) (hi, lo uint64, ok bool) {
	if !addr.IsValid() || addr.Is4() || addr.Is4In6() {
		return 0, 0, false
	}
	b := addr.As16()
	return binary.BigEndian.Uint64(b[0:8]), binary.BigEndian.Uint64(b[8:16]), true
}

// AddrFromHalves 由高低两个 64 位（大端）重建 IPv6 地址。
func AddrFromHalves(hi, lo uint64) netip.Addr {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
	return netip.AddrFrom16(b)
}
