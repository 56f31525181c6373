package xaddr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Category 是 IPv6 地址的结构类别。
// 数值即编码格式中的类别标签，改动任何取值都是编码格式不兼容变更。
type Category uint8

const (
	// CategoryLoopback 环回地址 ::1。
	CategoryLoopback Category = 0
	// CategoryUnspecified 未指定地址 ::。
	CategoryUnspecified Category = 1
	// CategoryLinkLocal 链路本地规范形态 fe80::/64。
	CategoryLinkLocal Category = 2
	// CategoryUniqueLocal 唯一本地 fc00::/7 且接口标识为零。
	CategoryUniqueLocal Category = 3
	// CategoryDocumentation 文档专用 2001:db8::/32。
	CategoryDocumentation Category = 4
	// CategoryGlobalCommon 全球单播 2000::/3 且高 64 位命中已发布前缀表。
	CategoryGlobalCommon Category = 5
	// CategoryGlobalFull 兜底类别：上述各类未命中的任何地址。
	CategoryGlobalFull Category = 6
	// CategoryMulticast 组播 ff00::/8。
	CategoryMulticast Category = 7
)

// String 返回类别的短标签。
func (c Category) String() string {
	switch c {
	case CategoryLoopback:
		return "loopback"
	case CategoryUnspecified:
		return "unspecified"
	case CategoryLinkLocal:
		return "link-local"
	case CategoryUniqueLocal:
		return "unique-local"
	case CategoryDocumentation:
		return "documentation"
	case CategoryGlobalCommon:
		return "global-common"
	case CategoryGlobalFull:
		return "global-full"
	case CategoryMulticast:
		return "multicast"
	default:
		return "unknown"
	}
}

// Label 返回类别的人类可读描述。
func (c Category) Label() string {
	switch c {
	case CategoryLoopback:
		return "IPv6 loopback (::1)"
	case CategoryUnspecified:
		return "IPv6 unspecified (::)"
	case CategoryLinkLocal:
		return "link-local (fe80::/64)"
	case CategoryUniqueLocal:
		return "unique local (fc00::/7)"
	case CategoryDocumentation:
		return "documentation (2001:db8::/32)"
	case CategoryGlobalCommon:
		return "global unicast (published prefix)"
	case CategoryGlobalFull:
		return "global unicast (full form)"
	case CategoryMulticast:
		return "multicast (ff00::/8)"
	default:
		return "unknown"
	}
}

// linkLocalPrefix 是规范链路本地形态 fe80::/64 的高 64 位。
const linkLocalPrefix = uint64(0xfe80) << 48

// commonPrefixes 是已发布前缀表：八个众所周知的公共解析器/运营商 /64 前缀
// 的高 64 位。表序即编码中的前缀索引，表内容与顺序冻结——任何改动
// 都是编码格式不兼容变更（与 Feistel 调度同等对待）。
var commonPrefixes = [...]uint64{
	0x2001486048600000, // 2001:4860:4860::/64  Google Public DNS
	0x2606470047000000, // 2606:4700:4700::/64  Cloudflare DNS
	0x2620011900350000, // 2620:119:35::/64     OpenDNS
	0x262000fe00000000, // 2620:fe::/64         Quad9
	0x2001486000000000, // 2001:4860::/64       Google
	0x2001047000000000, // 2001:470::/64        Hurricane Electric
	0x2001055800000000, // 2001:558::/64        Comcast
	0x2a00145000000000, // 2a00:1450::/64       Google EU
}

// CommonPrefixCount 是已发布前缀表的条目数。
const CommonPrefixCount = len(commonPrefixes)

var (
	// commonPrefixSet 以 IPSet 形式保存前缀表，O(log n) 判断成员关系。
	commonPrefixSet *netipx.IPSet

	// commonPrefixIndex 把高 64 位映射回表内索引。
	commonPrefixIndex map[uint64]int
)

func init() {
	var b netipx.IPSetBuilder
	commonPrefixIndex = make(map[uint64]int, CommonPrefixCount)
	for i, hi := range commonPrefixes {
		b.AddPrefix(netip.PrefixFrom(AddrFromHalves(hi, 0), 64))
		commonPrefixIndex[hi] = i
	}
	set, err := b.IPSet()
	if err != nil {
		panic(fmt.Sprintf("xaddr: build common prefix set: %v", err))
	}
	commonPrefixSet = set
}

// CommonPrefixIndex 返回 addr 高 64 位在已发布前缀表中的索引。
// 未命中返回 (0, false)。
func CommonPrefixIndex(addr netip.Addr) (int, bool) {
	if !commonPrefixSet.Contains(addr) {
		return 0, false
	}
	hi, _, ok := AddrHalves(addr)
	if !ok {
		return 0, false
	}
	i, ok := commonPrefixIndex[hi]
	return i, ok
}

// CommonPrefixAt 返回表内索引 i 对应的高 64 位。
// 越界是调用方的编程错误，直接 panic。
func CommonPrefixAt(i int) uint64 {
	return commonPrefixes[i]
}

// Categorize 返回 IPv6 地址的结构类别，按规则表序首个命中生效：
//
//  1. ::1            → Loopback
//  2. ::             → Unspecified
//  3. fe80::/64      → LinkLocal（fe80::/10 内非规范形态走兜底）
//  4. fc00::/7 且低 64 位为零 → UniqueLocal
//  5. 2001:db8::/32  → Documentation
//  6. 2000::/3 且高 64 位命中前缀表 → GlobalCommon
//  7. ff00::/8       → Multicast
//  8. 其余           → GlobalFull
//
// 结果是地址的纯函数。调用方须保证 addr 是非 mapped 的 IPv6 地址
// （先经 [Endpoint.Normalize]），IPv4 地址的分类无意义。
func Categorize(addr netip.Addr) Category {
	if addr == netip.IPv6Loopback() {
		return CategoryLoopback
	}
	if addr == netip.IPv6Unspecified() {
		return CategoryUnspecified
	}

	hi, lo, ok := AddrHalves(addr)
	if !ok {
		return CategoryGlobalFull
	}

	b0 := byte(hi >> 56)
	switch {
	case hi == linkLocalPrefix:
		// 仅规范形态 fe80::/64 可由接口标识无损重建；
		// fe80::/10 内中间位非零的形态走全形式兜底。
		return CategoryLinkLocal
	case b0&0xfe == 0xfc && lo == 0:
		return CategoryUniqueLocal
	case hi>>32 == 0x20010db8:
		return CategoryDocumentation
	case b0&0xe0 == 0x20:
		if _, ok := CommonPrefixIndex(addr); ok {
			return CategoryGlobalCommon
		}
		return CategoryGlobalFull
	case b0 == 0xff:
		return CategoryMulticast
	default:
		return CategoryGlobalFull
	}
}
