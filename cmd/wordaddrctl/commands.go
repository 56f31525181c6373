package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/wordaddr/pkg/codec/xdict"
	"github.com/omeyang/wordaddr/pkg/codec/xfeistel"
	"github.com/omeyang/wordaddr/pkg/codec/xwords"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

// codecFormatVersion 是当前编码格式版本（词典 + 置换调度）。
const codecFormatVersion = xfeistel.Version

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createEncodeCommand(),
		createDecodeCommand(),
		createInspectCommand(),
		createInteractiveCommand(),
	}
}

// createEncodeCommand 创建 encode 子命令。
func createEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Aliases:   []string{"e"},
		Usage:     "把端点编码为词序列",
		ArgsUsage: "<端点> | -",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("%w: encode 需要一个端点参数", errUsage)
			}
			if args[0] == "-" {
				return app.encodeBatch(ctx, os.Stdin, os.Stdout)
			}
			return app.encodeOne(os.Stdout, args[0])
		},
	}
}

// createDecodeCommand 创建 decode 子命令。
func createDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"d"},
		Usage:     "把词序列解码为端点",
		ArgsUsage: "<词...> | -",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("%w: decode 需要词序列参数", errUsage)
			}
			if len(args) == 1 && args[0] == "-" {
				return app.decodeBatch(ctx, os.Stdin, os.Stdout)
			}
			return app.decodeOne(os.Stdout, strings.Join(args, " "))
		},
	}
}

// createInspectCommand 创建 inspect 子命令。
func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "查看端点的类别、布局与压缩比",
		ArgsUsage: "<端点>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("%w: inspect 需要一个端点参数", errUsage)
			}
			return app.inspectOne(os.Stdout, args[0])
		},
	}
}

// createInteractiveCommand 创建 interactive 子命令。
func createInteractiveCommand() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"repl"},
		Usage:   "交互模式（REPL）",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			return app.runInteractive(ctx)
		},
	}
}

// errUsage 标记参数用法错误，与端点解析错误同映射到退出码 2。
var errUsage = errors.New("wordaddrctl: invalid usage")

// appContext 汇聚一次命令执行所需的编解码器与输出选项。
type appContext struct {
	codec   *xwords.Codec
	jsonOut bool
}

// newAppContext 按 flag/配置文件构建执行上下文。
// 优先级：命令行 flag > 配置文件 > 默认值。
func newAppContext(cmd *cli.Command) (*appContext, error) {
	setupLogger(cmd.Bool("verbose"))

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	dictPath := cmd.String("dict")
	if dictPath == "" {
		dictPath = cfg.Dictionary
	}

	opts := []xwords.Option{}
	if dictPath != "" {
		slog.Debug("loading custom dictionary", "path", dictPath)
		f, err := os.Open(dictPath)
		if err != nil {
			return nil, fmt.Errorf("打开词典资产: %w", err)
		}
		defer f.Close()
		d, err := xdict.Load(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, xwords.WithDictionary(d))
	}

	codec, err := xwords.New(opts...)
	if err != nil {
		return nil, err
	}
	jsonOut := cfg.Output.JSON
	if cmd.IsSet("json") {
		jsonOut = cmd.Bool("json")
	}
	return &appContext{
		codec:   codec,
		jsonOut: jsonOut,
	}, nil
}

// encodeResult 是 encode 的 JSON 输出形态。
type encodeResult struct {
	Endpoint string   `json:"endpoint"`
	Words    []string `json:"words"`
	Category string   `json:"category,omitempty"`
	Ratio    float64  `json:"compression_ratio"`
}

// decodeResult 是 decode 的 JSON 输出形态。
type decodeResult struct {
	Words    []string `json:"words"`
	Endpoint string   `json:"endpoint"`
}

// inspectResult 是 inspect 的 JSON 输出形态。
type inspectResult struct {
	Endpoint     string  `json:"endpoint"`
	Family       string  `json:"family"`
	Category     string  `json:"category,omitempty"`
	Label        string  `json:"label,omitempty"`
	Words        int     `json:"words"`
	PayloadBits  int     `json:"payload_bits"`
	CapacityBits int     `json:"capacity_bits"`
	Ratio        float64 `json:"compression_ratio"`
}

func (a *appContext) encodeOne(w io.Writer, input string) error {
	ep, err := parseEndpointArg(input)
	if err != nil {
		return err
	}
	words, err := a.codec.EncodeWords(ep)
	if err != nil {
		return err
	}

	if a.jsonOut {
		info, err := a.codec.Inspect(ep)
		if err != nil {
			return err
		}
		res := encodeResult{
			Endpoint: ep.String(),
			Words:    words,
			Ratio:    info.Ratio,
		}
		if info.Family == xaddr.FamilyV6 {
			res.Category = info.Category.String()
		}
		return writeJSON(w, res)
	}
	fmt.Fprintln(w, strings.Join(words, " "))
	return nil
}

func (a *appContext) decodeOne(w io.Writer, input string) error {
	ep, err := a.codec.Decode(input)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return writeJSON(w, decodeResult{
			Words:    xwords.Tokenize(input),
			Endpoint: ep.String(),
		})
	}
	fmt.Fprintln(w, ep)
	return nil
}

func (a *appContext) inspectOne(w io.Writer, input string) error {
	ep, err := parseEndpointArg(input)
	if err != nil {
		return err
	}
	info, err := a.codec.Inspect(ep)
	if err != nil {
		return err
	}

	if a.jsonOut {
		res := inspectResult{
			Endpoint:     ep.String(),
			Family:       info.Family.String(),
			Words:        info.Words,
			PayloadBits:  info.PayloadBits,
			CapacityBits: info.CapacityBits,
			Ratio:        info.Ratio,
		}
		if info.Family == xaddr.FamilyV6 {
			res.Category = info.Category.String()
			res.Label = info.Category.Label()
		}
		return writeJSON(w, res)
	}

	fmt.Fprintf(w, "端点:   %s\n", ep)
	fmt.Fprintf(w, "地址族: %s\n", info.Family)
	if info.Family == xaddr.FamilyV6 {
		fmt.Fprintf(w, "类别:   %s (%s)\n", info.Category, info.Category.Label())
	}
	fmt.Fprintf(w, "词数:   %d\n", info.Words)
	fmt.Fprintf(w, "净荷:   %d/%d 位\n", info.PayloadBits, info.CapacityBits)
	fmt.Fprintf(w, "压缩比: %.1f%%\n", info.Ratio*100)
	return nil
}

// encodeBatch 从 r 逐行读取端点并逐行输出编码，空行跳过。
// 任一行失败立即终止并返回该行错误。
func (a *appContext) encodeBatch(ctx context.Context, r io.Reader, w io.Writer) error {
	return eachLine(ctx, r, func(line string) error {
		return a.encodeOne(w, line)
	})
}

// decodeBatch 从 r 逐行读取词序列并逐行输出端点。
func (a *appContext) decodeBatch(ctx context.Context, r io.Reader, w io.Writer) error {
	return eachLine(ctx, r, func(line string) error {
		return a.decodeOne(w, line)
	})
}

func eachLine(ctx context.Context, r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseEndpointArg 解析端点参数，接口名形式的 zone 先解析为索引。
func parseEndpointArg(input string) (xaddr.Endpoint, error) {
	resolved, err := resolveZoneName(input)
	if err != nil {
		return xaddr.Endpoint{}, err
	}
	return xaddr.ParseEndpoint(resolved)
}

// resolveZoneName 把端点文本中的接口名 zone 替换为数字索引
// （"fe80::1%eth0" → "fe80::1%2"）。数字 zone 原样保留。
//
// 设计决策: 接口名查询属于宿主机环境信息，放在 CLI 层；
// 库层（xaddr）保持纯函数，只接受数字 zone。
func resolveZoneName(input string) (string, error) {
	i := strings.IndexByte(input, '%')
	if i < 0 {
		return input, nil
	}

	// zone 止于 ']'（带端口形式）或串尾
	end := strings.IndexByte(input[i:], ']')
	if end < 0 {
		end = len(input)
	} else {
		end += i
	}
	zone := input[i+1 : end]
	if zone == "" {
		return "", fmt.Errorf("%w: empty zone", xaddr.ErrMalformedAddress)
	}
	if _, err := strconv.ParseUint(zone, 10, 32); err == nil {
		return input, nil
	}

	ifi, err := net.InterfaceByName(zone)
	if err != nil {
		return "", fmt.Errorf("%w: unknown interface %q", xaddr.ErrMalformedAddress, zone)
	}
	slog.Debug("resolved zone", "name", zone, "index", ifi.Index)
	return input[:i+1] + strconv.Itoa(ifi.Index) + input[end:], nil
}
