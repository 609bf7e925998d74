// Package config 配置文件加载
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cxykevin/jsoncheck/config/structs"
	"github.com/cxykevin/jsoncheck/internal/configutil"
	"github.com/cxykevin/jsoncheck/product"
)

// GlobalConfig 配置文件对象
var GlobalConfig = Default()

const defaultConfigPath = "~/.config/jsoncheck/config.json"
const envConfigName = "JSONCHECK_CONFIG_PATH"

var configPath string

// ExpandPath 展开路径中的 ~ 和环境变量
func ExpandPath(path string) string {
	return configutil.ExpandPath(path)
}

// Default 返回默认配置
func Default() *structs.Config {
	cfg := structs.BuildDefault(structs.Config{})
	cfg.Version = product.VersionID
	return &cfg
}

// Path 返回当前配置文件路径（已展开）
func Path() string {
	if configPath == "" {
		// 读取环境变量
		if path := os.Getenv(envConfigName); path != "" {
			configPath = path
		} else {
			configPath = defaultConfigPath
		}
	}
	return ExpandPath(configPath)
}

// Load 加载配置文件
func Load() {
	// 默认配置
	GlobalConfig = Default()
	configPath = ""
	expandedPath := Path()

	// 确保目录存在
	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		// 目录创建失败，使用默认配置
		return
	}

	// 读取配置文件
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		// 文件不存在或读取失败，备份旧文件并创建新配置
		if os.IsNotExist(err) {
			// 创建默认配置
			Save()
			return
		}

		// 如果是其他错误，尝试备份旧文件
		if _, backupErr := os.Stat(expandedPath); backupErr == nil {
			backupPath := expandedPath + ".bak"
			os.Rename(expandedPath, backupPath)
		}

		// 创建默认配置
		Save()
		return
	}

	// 解析配置文件，缺失字段保留默认值
	if err := json.Unmarshal(data, GlobalConfig); err != nil {
		os.Rename(expandedPath, expandedPath+".bak")
		GlobalConfig = Default()
		Save()
		return
	}
}

// Save 保存配置文件
func Save() {
	expandedPath := Path()

	// 确保目录存在
	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}

	// 序列化配置
	data, err := json.MarshalIndent(GlobalConfig, "", "  ")
	if err != nil {
		return
	}

	// 写入配置文件
	os.WriteFile(expandedPath, data, 0644)
}
