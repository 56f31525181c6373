package xbits

import "errors"

// 位缓冲区相关错误。
var (
	// ErrInvalidCapacity 表示缓冲区容量不合法（必须在 1..MaxBits 之间）。
	ErrInvalidCapacity = errors.New("xbits: capacity must be in [1, 144]")

	// ErrInvalidWidth 表示位宽不在 [1, 64] 范围内。
	ErrInvalidWidth = errors.New("xbits: width must be in [1, 64]")

	// ErrValueTooWide 表示 value 无法用声明的位宽表示（value >= 2^width）。
	ErrValueTooWide = errors.New("xbits: value does not fit in width")

	// ErrOverflow 表示追加超出缓冲区声明容量。
	ErrOverflow = errors.New("xbits: append exceeds capacity")

	// ErrUnderflow 表示读取超出已写入的位数。
	ErrUnderflow = errors.New("xbits: read exceeds available bits")

	// ErrOutOfBounds 表示 ReadAt/WriteAt 的绝对区间越过已写入范围。
	ErrOutOfBounds = errors.New("xbits: offset out of written range")
)
