//go:build !android

package utils

// ScreenshotDir 返回截图目录（非 Android 平台为工作目录）
func ScreenshotDir() (string, error) {
	return ".", nil
}
