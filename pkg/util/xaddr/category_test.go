package xaddr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		addr string
		want Category
	}{
		{"::1", CategoryLoopback},
		{"::", CategoryUnspecified},
		{"fe80::1", CategoryLinkLocal},
		{"fe80::aabb:ccff:fedd:eeff", CategoryLinkLocal},
		{"febf::1", CategoryGlobalFull},       // fe80::/10 内的非规范形态
		{"fe80:0:0:5::1", CategoryGlobalFull}, // 中间位非零，无法仅凭接口标识重建
		{"fec0::1", CategoryGlobalFull},       // 越过 /10 边界
		{"fc00:1:2:3::", CategoryUniqueLocal}, // 接口标识为零
		{"fd12:3456:789a:1::", CategoryUniqueLocal},
		{"fd12:3456:789a:1::1", CategoryGlobalFull}, // 接口标识非零 → 全形式
		{"2001:db8::1", CategoryDocumentation},
		{"2001:db8:85a3::8a2e:370:7334", CategoryDocumentation},
		{"2001:4860:4860::8888", CategoryGlobalCommon},
		{"2606:4700:4700::1111", CategoryGlobalCommon},
		{"2620:fe::fe", CategoryGlobalCommon},
		{"2001:4860:4860:1::1", CategoryGlobalFull}, // 相邻 /64 不在表内
		{"2400:cb00::1", CategoryGlobalFull},
		{"ff02::1", CategoryMulticast},
		{"ff05::1:3", CategoryMulticast},
		{"100::1", CategoryGlobalFull}, // 2000::/3 之外的兜底
		{"::2", CategoryGlobalFull},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := Categorize(netip.MustParseAddr(tt.addr))
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCategoryTagsFrozen 锁定类别标签数值：编码格式的一部分。
func TestCategoryTagsFrozen(t *testing.T) {
	assert.Equal(t, Category(0), CategoryLoopback)
	assert.Equal(t, Category(1), CategoryUnspecified)
	assert.Equal(t, Category(2), CategoryLinkLocal)
	assert.Equal(t, Category(3), CategoryUniqueLocal)
	assert.Equal(t, Category(4), CategoryDocumentation)
	assert.Equal(t, Category(5), CategoryGlobalCommon)
	assert.Equal(t, Category(6), CategoryGlobalFull)
	assert.Equal(t, Category(7), CategoryMulticast)
}

func TestCategoryStrings(t *testing.T) {
	for c := CategoryLoopback; c <= CategoryMulticast; c++ {
		assert.NotEqual(t, "unknown", c.String(), "category %d", c)
		assert.NotEqual(t, "unknown", c.Label(), "category %d", c)
	}
	assert.Equal(t, "unknown", Category(99).String())
	assert.Equal(t, "unknown", Category(99).Label())
	assert.Equal(t, "loopback", CategoryLoopback.String())
	assert.Equal(t, "IPv6 loopback (::1)", CategoryLoopback.Label())
}

func TestCommonPrefixTable(t *testing.T) {
	require.Equal(t, 8, CommonPrefixCount)

	// 表序冻结：索引即编码内容
	assert.Equal(t, uint64(0x2001486048600000), CommonPrefixAt(0))
	assert.Equal(t, uint64(0x2a00145000000000), CommonPrefixAt(CommonPrefixCount-1))

	// 往返：每个表项的任意成员地址都命中自己的索引
	for i := 0; i < CommonPrefixCount; i++ {
		addr := AddrFromHalves(CommonPrefixAt(i), 0xdeadbeef)
		got, ok := CommonPrefixIndex(addr)
		require.True(t, ok, "prefix %d", i)
		assert.Equal(t, i, got, "prefix %d", i)
	}

	_, ok := CommonPrefixIndex(netip.MustParseAddr("2400:cb00::1"))
	assert.False(t, ok)
	_, ok = CommonPrefixIndex(netip.MustParseAddr("1.2.3.4"))
	assert.False(t, ok)
}
