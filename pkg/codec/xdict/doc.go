// Package xdict 提供字词编码使用的 4,096 词冻结词典。
//
// 词典是编码格式的一部分：词在资产文件中的行号即索引（0 起），
// 每个词承载 12 位信息。内置资产通过 go:embed 随二进制分发，
// 这是规范词典；[Load] 允许从外部资产构建同规格的自定义词典。
//
// # 词的约束
//
// 每个词是 2–8 个小写 ASCII 字母。资产必须恰好 4,096 行、无空行、
// 无注释、大小写折叠后无重复，违反任一条构建即失败
// （[ErrMalformedDictionary]）。
//
// # 查询
//
//   - [Dictionary.Word]: 索引 → 词，索引域为 [0, 4096)
//   - [Dictionary.Index]: 词 → 索引，输入大小写不敏感，
//     非字母字符或不在表内返回 [ErrNotInDictionary]
//
// Index 对已是小写的输入零分配；混合大小写输入在栈上折叠后查表。
//
// # 并发安全
//
// Dictionary 构建后不可变，可被任意数量的 goroutine 并发读取，
// 无需同步。[Default] 返回进程内共享的内置词典单例。
package xdict
