package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxykevin/jsoncheck/internal/configutil"
	"github.com/cxykevin/jsoncheck/storage/structs"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// DB 数据库连接
var DB *gorm.DB

const memoryDB = ":memory:"

// InitDB 初始化数据库，返回 error 便于调用方处理
func InitDB(dbPath string) error {
	if dbPath == "" {
		dbPath = filepath.Join(configutil.ExpandPath(projectDataPath), sqliteFileName)
	}

	// 支持内存数据库
	if dbPath != memoryDB {
		dir := filepath.Dir(dbPath)
		if dir != "." {
			// 创建父目录（如果不存在）
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create db directory %s: %w", dir, err)
			}
		}
	}

	// 使用 gorm 打开连接，注意不要短变量声明遮盖包级的 DB 变量
	var err error
	dialect := sqlite.Open(dbPath)
	DB, err = gorm.Open(dialect, &gorm.Config{Logger: NewLogger()})
	if err != nil {
		return fmt.Errorf("failed to open db %s: %w", dbPath, err)
	}

	if dbPath == memoryDB {
		// 每个连接都是独立的内存库，只保留一个连接
		sqlDB, err := DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := DB.AutoMigrate(structs.Tables...); err != nil {
		return fmt.Errorf("failed to automigrate: %w", err)
	}
	return nil
}

// Close 关闭数据库连接
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	DB = nil
	return sqlDB.Close()
}
