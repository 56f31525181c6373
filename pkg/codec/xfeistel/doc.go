// Package xfeistel 提供 48 位平衡 Feistel 置换（8 轮）。
//
// 置换用于编码格式的位扩散：相邻的端点（只差一个比特）经过置换后
// 的词序列在多个词上不同，避免视觉上相近的地址共享词前缀。
// 这是可用性措施而非加密：轮函数和密钥调度完全公开、固定，
// 不提供任何保密性。
//
// # 轮函数
//
// 块被拆成两个 24 位半块 (L, R)，每轮执行：
//
//	L', R' = R, L XOR F(R, K[i])
//
// F 以 xxhash64 为非线性核心：把轮密钥与半块异或后求哈希，
// 取低 24 位作为输出。xxhash 是确定性的非加密哈希（项目内同样
// 用于一致性决策），保证任何进程、任何平台上置换结果一致。
//
// # 密钥调度
//
// 8 个轮密钥是固定常量，取自 SHA-512 的初始哈希值（前 8 个素数
// 平方根小数部分的前 64 位）——公开的 nothing-up-my-sleeve 数。
// 轮函数或密钥调度的任何改动都是编码格式不兼容变更，必须同时
// 递增 [Version]。
//
// # 性质
//
// 置换是双射，[Inverse] 是 [Forward] 的逆。对输入的单比特扰动，
// 8 轮后扩散到整个 48 位块（雪崩效应），上层以 48 位窗口覆盖
// 整个位流即可保证任何扰动至少影响一个完整窗口。
package xfeistel
