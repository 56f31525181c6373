// Package codec 提供字词编码相关的子包。
//
// 子包列表：
//   - xdict: 4,096 词冻结词典，词 ↔ 索引双向查询
//   - xbits: 固定容量 MSB-first 位缓冲区
//   - xfeistel: 48 位 8 轮 Feistel 扩散置换
//   - xwords: 端点 ↔ 词序列编解码门面
//
// 设计原则：
//   - 编解码是纯函数：无 I/O、无缓存、无全局可变状态
//   - 词典与置换调度共同构成冻结的编码格式，任何改动都要递增格式版本
//   - 错误以预定义哨兵变量返回，支持 errors.Is 分流
package codec
