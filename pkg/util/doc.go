// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xaddr: 网络端点模型与 IPv6 结构分类，基于 net/netip + go4.org/netipx
//
// 设计原则：
//   - 值类型优先，零分配比较，可做 map key
//   - 可失败函数返回 error，预定义错误变量支持 errors.Is
//   - 跨平台兼容
package util
