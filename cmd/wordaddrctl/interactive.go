package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// runInteractive 交互模式（REPL）：每行输入要么是端点（编码），
// 要么是词序列（解码），自动识别。
func (a *appContext) runInteractive(ctx context.Context) error {
	fmt.Println("wordaddrctl 交互模式")
	fmt.Println("输入端点（如 192.168.1.1:443）编码，输入词序列解码")
	fmt.Println("输入 'help' 查看说明，'quit' 或 'exit' 退出")
	fmt.Println()

	return a.runREPL(ctx)
}

// startInputReader 启动输入读取 goroutine。
// 设计决策: inputCh 无缓冲，使用 select 保护发送，
// 防止 context 取消后 goroutine 在 inputCh 发送端永久阻塞。
func startInputReader(ctx context.Context) (<-chan string, <-chan error) {
	inputCh := make(chan string)
	errCh := make(chan error, 1) // 缓冲区为 1，避免读取 goroutine 在 context 取消后泄漏

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case errCh <- err:
			default:
			}
		}
		close(inputCh)
	}()

	return inputCh, errCh
}

// runREPL 运行 REPL 循环。
// 使用 goroutine + channel 实现可取消的输入读取，确保 Ctrl+C 能立即退出。
func (a *appContext) runREPL(ctx context.Context) error {
	inputCh, errCh := startInputReader(ctx)

	for {
		fmt.Print("wordaddr> ")

		select {
		case <-ctx.Done():
			fmt.Println("\n再见!")
			return nil
		case err := <-errCh:
			return fmt.Errorf("读取输入错误: %w", err)
		case line, ok := <-inputCh:
			if !ok {
				// EOF，正常退出
				fmt.Println()
				return nil
			}
			line = strings.TrimSpace(line)
			if a.processLine(line) {
				return nil
			}
		}
	}
}

// processLine 处理单行输入，返回 true 表示应该退出。
func (a *appContext) processLine(line string) bool {
	switch line {
	case "":
		return false
	case "quit", "exit":
		fmt.Println("再见!")
		return true
	case "help":
		printREPLHelp()
		return false
	}

	// 端点优先：能按端点语法解析就编码，否则按词序列解码
	if ep, err := parseEndpointArg(line); err == nil {
		if err := a.encodeOne(os.Stdout, ep.String()); err != nil {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		return false
	}
	if err := a.decodeOne(os.Stdout, line); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
	}
	return false
}

func printREPLHelp() {
	fmt.Println("输入形式:")
	fmt.Println("  端点     192.168.1.1:443 / [::1]:80 / fe80::1%2 → 编码为词序列")
	fmt.Println("  词序列   4/6/9/12 个词典词（空格或 '.' 分隔）→ 解码为端点")
	fmt.Println("  quit     退出")
}
