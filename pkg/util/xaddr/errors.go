package xaddr

import "errors"

var (
	// ErrMalformedAddress 表示端点文本不符合端点语法，
	// 或 zone 不是数字形式无法映射为 Scope。
	ErrMalformedAddress = errors.New("xaddr: malformed endpoint address")
)
