// Package xbits 提供固定容量的 MSB-first 位缓冲区。
//
// xbits 是字词编码格式的位装配层：编码侧把定宽整数按 MSB-first
// 顺序追加进缓冲区，解码侧用独立的读游标按相同顺序取出。
// 缓冲区容量在创建时声明（[1, MaxBits] 内任意位数；编解码使用的是
// 4/6/9/12 词布局的 48/72/108/144 位），之后不再增长。
//
// # 位序约定
//
// 整个流统一采用 MSB-first：先写入的位是第一个 12 位词索引的最高位，
// 单次 Append 内 value 的高位先进入流。这一约定必须与词序列的
// 口述/书写顺序一致，位序歧义是此类编码最常见的实现错误。
//
// # 核心操作
//
//   - Append(value, width): 追加 width 位（1..64），超出容量返回 [ErrOverflow]，
//     value 不能被 width 位表示时返回 [ErrValueTooWide]
//   - Read(width): 从读游标取出 width 位，剩余不足返回 [ErrUnderflow]
//   - ReadAt / WriteAt: 按绝对位偏移读写已有区间，供 48 位扩散窗口
//     原位回写使用，不移动追加游标和读游标
//
// # 并发安全
//
// Buffer 不是并发安全的。编解码的每次调用持有自己的 Buffer，
// 生命周期限定在单次调用内，不存在跨调用共享。
package xbits
