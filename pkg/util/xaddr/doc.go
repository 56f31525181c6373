// Package xaddr 提供网络端点模型与 IPv6 结构分类。
//
// xaddr 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 为字词编码提供三块地基：
//
//   - endpoint.go: [Endpoint] 值类型（地址 + 端口 + 流标签 + zone 索引）、
//     端点文本语法的解析与格式化
//   - category.go: IPv6 结构分类 [Category] 与已发布前缀表
//   - convert.go: [netip.Addr] 与 uint32 / 两个 uint64 的互转
//
// # 端点文本语法
//
// [ParseEndpoint] 接受标准写法：IPv4 点分十进制带可选 ":port"，
// IPv6 冒号十六进制带可选 "[...]:port"，缺省端口为 0。
// zone 仅接受数字形式（"fe80::1%2"），解析后移入 [Endpoint.Scope]；
// 接口名形式的 zone（"%eth0"）由调用方先行解析为索引，
// 库层拒绝并返回 [ErrMalformedAddress]。
//
// # IPv4-mapped IPv6
//
// "::ffff:192.168.1.1" 形式在 [Endpoint.Normalize] 中统一 Unmap 为纯
// IPv4 再参与分类与编码，保证同一逻辑地址只有一种编码形态。
//
// # 分类
//
// [Categorize] 把 IPv6 地址划入八个结构类别之一，规则按表序首个命中
// 生效，是地址的纯函数。类别决定编码层保留哪些位即可无损重建地址。
// 全球单播中"常见前缀"一类依赖包内固定的已发布前缀表，
// 表的成员关系用 [*netipx.IPSet] 以 O(log n) 查询。
//
// # 并发安全
//
// 所有类型均为不可变值类型或只读包级数据，可任意并发使用。
package xaddr
