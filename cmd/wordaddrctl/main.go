// wordaddrctl 是字词地址编解码器的命令行前端。
//
// 用法:
//
//	wordaddrctl [全局选项] <命令> [参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (YAML/JSON，可选)
//	-d, --dict     自定义词典资产路径 (默认: 内置规范词典)
//	-j, --json     以 JSON 输出结果
//	-v, --verbose  输出调试日志到 stderr
//
// 命令:
//
//	encode <端点>       端点 → 词序列（"192.168.1.1:443"、"[::1]:80"）
//	decode <词...>      词序列 → 端点（大小写不敏感，接受 '.' 分隔）
//	inspect <端点>      查看端点的类别、布局与压缩比
//	interactive         交互模式（REPL）
//	help                显示帮助信息
//
// encode/decode 以 "-" 作为参数时进入批处理模式：从 stdin 逐行
// 读取输入，逐行输出结果。
//
// zone 说明:
//
//	链路本地地址的 zone 接受数字索引（fe80::1%2）或接口名
//	（fe80::1%eth0）；接口名通过本机接口表解析为索引后参与编码，
//	解码输出恒为数字索引形式。
//
// 退出码:
//
//	0: 成功
//	2: 输入解析错误（非法端点、参数错误）
//	3: 解码错误（词不在词典、词数非法、未知类别、填充位非零）
//	1: 其它错误
//
// 示例:
//
//	wordaddrctl encode 192.168.1.1:443
//	wordaddrctl decode lunar mural crater finch
//	wordaddrctl --json inspect "[2001:db8::1]:443"
//	cat endpoints.txt | wordaddrctl encode -
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/wordaddr/pkg/codec/xdict"
	"github.com/omeyang/wordaddr/pkg/codec/xwords"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "wordaddrctl",
		Usage:   "网络端点 ↔ 词序列编解码",
		Version: fmt.Sprintf("%s (commit: %s, codec format: v%d)", Version, GitCommit, codecFormatVersion),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (YAML/JSON)",
			},
			&cli.StringFlag{
				Name:    "dict",
				Aliases: []string{"d"},
				Usage:   "自定义词典资产路径",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 输出结果",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "输出调试日志",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if err := app.Run(ctx, args); err != nil {
		code := exitCodeFor(err)
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "错误: %v\n", msg)
		}
		return code
	}
	return 0
}

// exitError 表示需要特定退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// exitCodeFor 把错误映射为文档约定的退出码。
func exitCodeFor(err error) int {
	var exitErr *exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.code
	case errors.Is(err, xaddr.ErrMalformedAddress), errors.Is(err, errUsage):
		return 2
	case errors.Is(err, xdict.ErrNotInDictionary),
		errors.Is(err, xwords.ErrWrongWordCount),
		errors.Is(err, xwords.ErrUnknownCategory),
		errors.Is(err, xwords.ErrPaddingNotZero):
		return 3
	default:
		return 1
	}
}

// setupSignalHandler 设置信号处理：SIGINT/SIGTERM 取消运行中的命令。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
}

// setupLogger 安装全局 slog，--verbose 打开调试级别。
func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
