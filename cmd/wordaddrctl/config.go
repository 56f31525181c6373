package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// 配置加载相关错误。
var (
	// errUnsupportedFormat 表示配置文件扩展名不受支持。
	errUnsupportedFormat = errors.New("wordaddrctl: unsupported config format (use .yaml/.yml/.json)")
)

// config 是 CLI 的文件配置。所有字段都可被命令行 flag 覆盖。
type config struct {
	// Dictionary 自定义词典资产路径，空串使用内置规范词典。
	Dictionary string `koanf:"dictionary"`

	// Output 输出选项。
	Output struct {
		// JSON 以 JSON 输出结果。
		JSON bool `koanf:"json"`
	} `koanf:"output"`
}

// loadConfig 加载配置文件；path 为空返回零值配置。
// 格式按扩展名检测（.yaml/.yml/.json），文件由本函数读取后
// 经 rawbytes provider 装载。
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	parser, err := detectParser(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("读取配置文件: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("解析配置文件 %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("反序列化配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

// detectParser 按文件扩展名选择解析器。
func detectParser(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, errUnsupportedFormat
	}
}
