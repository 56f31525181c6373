package xwords

import "github.com/omeyang/wordaddr/pkg/codec/xdict"

// Option 配置 Codec 的可选参数。
type Option func(*Codec) error

// WithDictionary 使用自定义词典替换内置规范词典。
//
// 自定义词典编出的词序列只能由同一词典解码；跨词典互通
// 要求双方资产逐字节一致。
func WithDictionary(d *xdict.Dictionary) Option {
	return func(c *Codec) error {
		if d == nil {
			return ErrNilDictionary
		}
		c.dict = d
		return nil
	}
}
