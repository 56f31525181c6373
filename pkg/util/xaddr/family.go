package xaddr

import "net/netip"

// Family 表示端点的地址族。
type Family uint8

const (
	// FamilyInvalid 表示无效或未知的地址族。
	FamilyInvalid Family = 0
	// FamilyV4 表示 IPv4。
	FamilyV4 Family = 4
	// FamilyV6 表示 IPv6。
	FamilyV6 Family = 6
)

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case FamilyV4:
		return "IPv4"
	case FamilyV6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// AddrFamily 返回 addr 的地址族。
// IPv4-mapped IPv6 地址视为 FamilyV4。
// 无效地址返回 FamilyInvalid。
func AddrFamily(addr netip.Addr) Family {
	if addr.Is4() || addr.Is4In6() {
		return FamilyV4
	}
	if addr.IsValid() {
		return FamilyV6
	}
	return FamilyInvalid
}
