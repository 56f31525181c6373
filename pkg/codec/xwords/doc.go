// Package xwords 提供网络端点与自然语言词序列之间的可逆编码。
//
// 任何合法端点编码为规范词序列，该序列解码回完全相同的端点。
// 词数即地址族与布局：4 词 = IPv4，6/9/12 词 = IPv6。
//
// # 位布局（格式版本 1，与 xfeistel.Version 同步）
//
// 每词承载 12 位（词典索引），流内统一 MSB-first。
//
//	词数  容量   内容（流序）                               尾部零填充
//	 4    48    addr32 · port16（无标签）                      0
//	 6    72    tag3 ∈ {0,1} · port16                         53
//	 9   108    tag3=2 · iface64 · scope24 · port16            1
//	 9   108    tag3=3 · ula57（地址第 7..63 位）· port16      32
//	 9   108    tag3=5 · prefixIndex8 · iface64 · port16       17
//	12   144    addr128 · port16（无标签）                      0
//
// 12 词布局是兜底全形式：128 位地址加 16 位端口恰好填满 144 位，
// 没有标签空间，也不需要——词数本身即完成派发。文档、组播与其它
// 全球单播地址统一走全形式。
//
// 尾部填充位必须为零，解码时校验，非零返回 [ErrPaddingNotZero]。
//
// # 扩散
//
// 打包后的位流按 48 位窗口做 Feistel 置换（见 xfeistel），
// 窗口序列按容量固定：
//
//	 48: [0,48)
//	 72: [0,48) [24,72)
//	108: [0,48) [48,96) [60,108)
//	144: [0,48) [48,96) [96,144)
//
// 相邻窗口重叠时按序复合仍是双射，且每一位都落在至少一个窗口内：
// 单比特差异至少扩散到一个完整窗口，相邻端点的词序列至少两词不同。
// 解码按逆序施加逆置换。
//
// # 流标签与 zone
//
// 编码格式不承载 IPv6 流标签（全形式已无空余位）；zone 索引仅在
// 链路本地类别中承载且上限 2^24-1。超出承载能力的端点编码返回
// [ErrNotEncodable]，显式失败而非静默丢失，保证一切编出的序列
// 都能无损还原。
//
// # 并发安全
//
// Codec 构建后只读，可任意并发调用；每次编解码只触碰调用内的
// 临时缓冲区。
package xwords
