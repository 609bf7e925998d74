// Package structs 数据库表结构
package structs

// Results 校验历史表
type Results struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Source   string // 文件路径，命令行文本为 <argument>
	Encoding string
	Size     int64  // 已读取的字节数
	Digest   string `gorm:"index"` // 输入的 sha256
	Valid    bool   // 语法是否合法
	Accepted bool   // 规则判定结果，决定退出码
	Cause    string // 拒绝原因
	Offset   int64  // 被拒绝时的偏移量
	MaxDepth int32
	Time     uint64 `gorm:"autoCreateTime"`
}

// Tables 需要迁移的表
var Tables = []any{
	&Results{},
}
