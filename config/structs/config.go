package structs

// CheckerConfig 校验器配置
type CheckerConfig struct {
	MaxDepth int32  `default:"20"` // 最大嵌套层数
	Charset  string `default:""`   // 输入文件编码，空代表按 BOM 检测
}

// ReportConfig 结果输出配置
type ReportConfig struct {
	AcceptIf string `default:"valid"` // 判定通过的表达式
	NoColor  bool   `default:"false"` // 禁用彩色输出
	Echo     bool   `default:"true"`  // 报告中回显命令行传入的文本
}

// HistoryConfig 校验历史配置
type HistoryConfig struct {
	Enable   bool   `default:"false"`               // 是否记录历史
	DataPath string `default:"~/.config/jsoncheck"` // 数据目录
	DBFile   string `default:"history.sqlite"`      // sqlite 文件名
}

// Config 配置文件结构
type Config struct {
	Version int32
	Checker CheckerConfig
	Report  ReportConfig
	History HistoryConfig
}
