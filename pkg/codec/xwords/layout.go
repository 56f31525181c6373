package xwords

import (
	"fmt"

	"github.com/omeyang/wordaddr/pkg/codec/xbits"
	"github.com/omeyang/wordaddr/pkg/codec/xfeistel"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

// 布局常量。位宽都是编码格式的一部分，改动即不兼容变更。
const (
	// WordsV4 等是四种布局的词数。
	WordsV4     = 4
	WordsShort  = 6
	WordsMedium = 9
	WordsFull   = 12

	bitsPerWord = 12

	capV4     = WordsV4 * bitsPerWord     // 48
	capShort  = WordsShort * bitsPerWord  // 72
	capMedium = WordsMedium * bitsPerWord // 108
	capFull   = WordsFull * bitsPerWord   // 144

	tagBits         = 3
	addrBits        = 128
	portBits        = 16
	ifaceBits       = 64
	scopeBits       = 24
	ulaBits         = 57 // 地址第 7..63 位：L 位 + 全局 ID + 子网 ID
	prefixIndexBits = 8

	// MaxScope 是链路本地布局可承载的最大 zone 索引。
	MaxScope = 1<<scopeBits - 1

	// MaxFlow 流标签不被任何布局承载，上限即 0。
	MaxFlow = 0
)

// ulaPrefix7 是 fc00::/7 的 7 位前缀值（1111110）。
const ulaPrefix7 = 0x7e

// diffusionWindows 给出各容量下 48 位扩散窗口的起始位偏移。
// 相邻窗口可重叠；encode 按序正向置换，decode 按逆序逆置换。
var diffusionWindows = map[int][]int{
	capV4:     {0},
	capShort:  {0, 24},
	capMedium: {0, 48, 60},
	capFull:   {0, 48, 96},
}

// diffuse 对已填满的缓冲区按窗口序列施加正向置换。
func diffuse(buf *xbits.Buffer) error {
	windows, ok := diffusionWindows[buf.Len()]
	if !ok {
		return fmt.Errorf("xwords: no diffusion schedule for %d bits", buf.Len())
	}
	for _, off := range windows {
		v, err := buf.ReadAt(off, xfeistel.BlockBits)
		if err != nil {
			return err
		}
		if err := buf.WriteAt(off, xfeistel.Forward(v), xfeistel.BlockBits); err != nil {
			return err
		}
	}
	return nil
}

// undiffuse 按逆序施加逆置换，是 diffuse 的逆。
func undiffuse(buf *xbits.Buffer) error {
	windows, ok := diffusionWindows[buf.Len()]
	if !ok {
		return fmt.Errorf("xwords: no diffusion schedule for %d bits", buf.Len())
	}
	for i := len(windows) - 1; i >= 0; i-- {
		v, err := buf.ReadAt(windows[i], xfeistel.BlockBits)
		if err != nil {
			return err
		}
		if err := buf.WriteAt(windows[i], xfeistel.Inverse(v), xfeistel.BlockBits); err != nil {
			return err
		}
	}
	return nil
}

// padToCapacity 把缓冲区用零位填到声明容量。
func padToCapacity(buf *xbits.Buffer) error {
	for buf.Len() < buf.Cap() {
		w := buf.Cap() - buf.Len()
		if w > 64 {
			w = 64
		}
		if err := buf.Append(0, w); err != nil {
			return err
		}
	}
	return nil
}

// checkPadding 读完剩余位并校验全零。
func checkPadding(buf *xbits.Buffer) error {
	for buf.Remaining() > 0 {
		w := buf.Remaining()
		if w > 64 {
			w = 64
		}
		v, err := buf.Read(w)
		if err != nil {
			return err
		}
		if v != 0 {
			return ErrPaddingNotZero
		}
	}
	return nil
}

// Layout 描述一个端点的编码布局，由 [Codec.Inspect] 返回。
type Layout struct {
	// Family 是端点的地址族。
	Family xaddr.Family

	// Category 是 IPv6 结构类别；IPv4 端点无意义（零值）。
	Category xaddr.Category

	// Words 是布局词数（4、6、9 或 12）。
	Words int

	// PayloadBits 是布局中承载信息的位数（不含尾部零填充）。
	PayloadBits int

	// CapacityBits 是布局总容量（12 × Words）。
	CapacityBits int

	// Ratio 是相对满载形式（IPv4 48 位 / IPv6 144 位）的压缩比，
	// [0, 1)，0 表示无压缩。
	Ratio float64
}

// planLayout 为规范化后的 IPv6 端点选择布局。
// 返回类别、词数与净荷位数；端点超出承载能力返回 ErrNotEncodable。
func planLayout(ep xaddr.Endpoint) (cat xaddr.Category, words, payload int, err error) {
	if ep.Flow != 0 {
		return 0, 0, 0, fmt.Errorf("%w: flow label %#x (not carried by any layout)", ErrNotEncodable, ep.Flow)
	}

	cat = xaddr.Categorize(ep.Addr)
	switch cat {
	case xaddr.CategoryLoopback, xaddr.CategoryUnspecified:
		words, payload = WordsShort, tagBits+portBits
	case xaddr.CategoryLinkLocal:
		if ep.Scope > MaxScope {
			return 0, 0, 0, fmt.Errorf("%w: scope %d exceeds %d", ErrNotEncodable, ep.Scope, uint32(MaxScope))
		}
		return cat, WordsMedium, tagBits + ifaceBits + scopeBits + portBits, nil
	case xaddr.CategoryUniqueLocal:
		words, payload = WordsMedium, tagBits+ulaBits+portBits
	case xaddr.CategoryGlobalCommon:
		words, payload = WordsMedium, tagBits+prefixIndexBits+ifaceBits+portBits
	default:
		// Documentation / GlobalFull / Multicast：全形式
		words, payload = WordsFull, addrBits+portBits
	}

	// 只有链路本地承载 zone 索引
	if ep.Scope != 0 {
		return 0, 0, 0, fmt.Errorf("%w: scope %d on %s address (only link-local carries a zone)", ErrNotEncodable, ep.Scope, cat)
	}
	return cat, words, payload, nil
}
