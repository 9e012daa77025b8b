package game

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenshotExporter 将画面保存为带时间戳的 PNG 文件
//
// 文件名格式: <prefix>-<YYYYMMDD-HHMMSS>.png
// 同一秒内多次保存会覆盖同名文件。
type ScreenshotExporter struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshotExporter 创建截图导出器
//
// 参数:
//   - dir: 输出目录（空字符串表示当前工作目录）
func NewScreenshotExporter(dir string) *ScreenshotExporter {
	return &ScreenshotExporter{
		dir:    dir,
		prefix: config.ScreenshotPrefix,
		now:    time.Now,
	}
}

// FileName 返回给定时间对应的截图文件名
func (e *ScreenshotExporter) FileName(t time.Time) string {
	return fmt.Sprintf("%s-%s%s", e.prefix, t.Format(config.ScreenshotTimeLayout), config.ScreenshotExt)
}

// Save 将图像编码为 PNG 并写入磁盘
//
// 返回:
//   - string: 写入的文件路径
//   - error: 失败时返回包装了 ErrExport 的错误
func (e *ScreenshotExporter) Save(img image.Image) (string, error) {
	path := filepath.Join(e.dir, e.FileName(e.now()))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("%w: encode %s: %w", ErrExport, path, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %w", ErrExport, path, err)
	}

	return path, nil
}

// CaptureImage 读取 ebiten 图像的像素到 image.RGBA
// 只能在游戏循环运行期间（Draw 中）调用
func CaptureImage(src *ebiten.Image) *image.RGBA {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(img.Pix)
	return img
}
