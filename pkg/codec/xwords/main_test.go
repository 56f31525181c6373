package xwords

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 在所有测试完成后检测 goroutine 泄漏。
// 编解码器是纯函数实现，任何泄漏都意味着实现引入了不该有的后台状态。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
