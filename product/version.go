// Package product 版本信息
package product

// Version 版本号
const Version = "0.2.1"

// VersionID 版本编号，写入配置文件用于迁移判断
const VersionID int32 = 3
