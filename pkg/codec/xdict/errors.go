package xdict

import "errors"

// 词典相关错误。
var (
	// ErrMalformedDictionary 表示词典资产不满足构建约束
	// （行数、字符集、长度或折叠重复），仅在构建阶段产生。
	ErrMalformedDictionary = errors.New("xdict: malformed dictionary asset")

	// ErrNotInDictionary 表示待查询的词不在词典中。
	ErrNotInDictionary = errors.New("xdict: word not in dictionary")
)
