// Package storage 校验历史存储
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxykevin/jsoncheck/internal/configutil"
	"github.com/cxykevin/jsoncheck/log"
	"github.com/cxykevin/jsoncheck/storage/structs"
	"gorm.io/gorm"
)

const projectDataPath = "~/.config/jsoncheck"
const sqliteFileName = "history.sqlite"

// ErrNotInited 数据库未初始化
var ErrNotInited = errors.New("storage not inited")

var logger *log.LogsObj

// InitStorage 初始化 db
func InitStorage(dataPath string, dbFile string) (*gorm.DB, error) {
	logger = log.New("storage")
	if dataPath == "" {
		// 读取环境变量：JSONCHECK_DEBUG_DATAPATH 和 JSONCHECK_DEBUG_SQLITEFILE
		dataPath = projectDataPath
		if v := os.Getenv("JSONCHECK_DEBUG_DATAPATH"); v != "" {
			dataPath = v
		}
	}

	if dbFile == "" {
		dbFile = sqliteFileName
		if v := os.Getenv("JSONCHECK_DEBUG_SQLITEFILE"); v != "" {
			dbFile = v
		}
	}
	dataPath = configutil.ExpandPath(dataPath)

	logger.Info("storage init in %s/%s", dataPath, dbFile)

	dbPath := dbFile
	if dbFile != memoryDB {
		// 确保数据目录存在
		if err := os.MkdirAll(dataPath, 0755); err != nil {
			logger.Error("failed to create data dir %s: %v", dataPath, err)
			return nil, fmt.Errorf("failed to create data dir %s: %w", dataPath, err)
		}
		dbPath = filepath.Join(dataPath, dbFile)
	}

	if err := InitDB(dbPath); err != nil {
		logger.Error("failed to init db %s: %v", dbPath, err)
		return nil, err
	}
	return DB, nil
}

// Record 写入一条校验结果
func Record(result *structs.Results) error {
	if DB == nil {
		return ErrNotInited
	}
	if err := DB.Create(result).Error; err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Recent 按时间倒序读取最近 limit 条结果
func Recent(limit int) ([]structs.Results, error) {
	if DB == nil {
		return nil, ErrNotInited
	}
	var results []structs.Results
	if err := DB.Order("id desc").Limit(limit).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return results, nil
}

// LastByDigest 查询同一输入最近一次的结果
func LastByDigest(digest string) (*structs.Results, error) {
	if DB == nil {
		return nil, ErrNotInited
	}
	var result structs.Results
	err := DB.Where("digest = ?", digest).Order("id desc").First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return &result, nil
}
