package xwords

import "errors"

// 编解码相关错误。
var (
	// ErrWrongWordCount 表示词数不在 {4, 6, 9, 12} 中。
	ErrWrongWordCount = errors.New("xwords: word count not in {4, 6, 9, 12}")

	// ErrUnknownCategory 表示解码出的类别标签（或前缀索引）
	// 不在所选布局的合法集合内。
	ErrUnknownCategory = errors.New("xwords: unknown category tag")

	// ErrPaddingNotZero 表示布局的尾部填充位非零。
	ErrPaddingNotZero = errors.New("xwords: non-zero padding bits")

	// ErrNotEncodable 表示端点超出编码格式的承载能力
	// （非零流标签，或 zone 超限 / 出现在不承载它的类别中）。
	ErrNotEncodable = errors.New("xwords: endpoint not encodable")

	// ErrNilDictionary 表示传入的词典为 nil。
	ErrNilDictionary = errors.New("xwords: dictionary must not be nil")
)
