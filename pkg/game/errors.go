package game

import "errors"

// 可恢复的错误类型
// 两者都只记录日志，不中断主循环
var (
	// ErrAssetLoad 可选资源（音效、字体文件）缺失或损坏
	ErrAssetLoad = errors.New("asset load failed")

	// ErrExport 截图写入失败（权限、磁盘已满等）
	ErrExport = errors.New("screenshot export failed")
)
