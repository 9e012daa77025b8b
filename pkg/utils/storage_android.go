//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScreenshotDir 返回 Android 上的截图目录，并确保其存在且可写
// 应用的工作目录不可写，截图放在 /data/data/{package}/screenshots
//
// 返回：
//   - string: 截图目录
//   - error: 如果创建目录失败返回错误
func ScreenshotDir() (string, error) {
	// 检测 Android 应用包名
	app, err := detectAndroidApp()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android app: %w", err)
	}

	dir := filepath.Join("/data/data", app, "screenshots")

	// 创建目录（如果不存在）
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory %s: %w", dir, err)
	}

	// 验证目录可写
	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return "", fmt.Errorf("screenshot directory %s is not writable: %w", dir, err)
	}
	os.Remove(testFile)

	return dir, nil
}

// detectAndroidApp 检测 Android 应用包名
// 从 /proc/self/cmdline 读取应用标识符
func detectAndroidApp() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// 移除 null 字节和换行符
	copied := make([]byte, 0, len(data))
	for _, ch := range data {
		switch ch {
		case 0, '\n':
			continue
		}
		copied = append(copied, ch)
	}

	result := string(copied)
	if result == "" {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}

	return result, nil
}
