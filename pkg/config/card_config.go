package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCardConfig 卡片配置校验失败
var ErrInvalidCardConfig = errors.New("invalid card config")

// CardConfig 卡片文案与配色
//
// 配置文件 data/card.yaml 在编译时通过 go:embed 嵌入，运行时不可修改。
type CardConfig struct {
	// Title 画面左上角标题
	Title string `yaml:"title"`

	// Message 信封打开后显示的消息正文
	Message string `yaml:"message"`

	// MessageTitle 消息框标题
	MessageTitle string `yaml:"messageTitle"`

	// EnvelopeLabel 信封上的文字
	EnvelopeLabel string `yaml:"envelopeLabel"`

	// CloseLabel 关闭按钮文字
	CloseLabel string `yaml:"closeLabel"`

	// OpenHint 信封旁的操作提示
	OpenHint string `yaml:"openHint"`

	// SaveHint 底部的截图提示
	SaveHint string `yaml:"saveHint"`

	// Palette 配色
	Palette Palette `yaml:"palette"`

	// colors 校验时解析出的配色
	colors ResolvedPalette
}

// Palette 以 "#rrggbb" 表示的配色
type Palette struct {
	Background     string `yaml:"background"`
	Accent         string `yaml:"accent"`
	Figure         string `yaml:"figure"`
	Text           string `yaml:"text"`
	OpenHint       string `yaml:"openHint"`
	SaveHint       string `yaml:"saveHint"`
	Hearts         string `yaml:"hearts"`
	PetalA         string `yaml:"petalA"`
	PetalB         string `yaml:"petalB"`
	FlowerCenter   string `yaml:"flowerCenter"`
	Stem           string `yaml:"stem"`
	EnvelopeBase   string `yaml:"envelopeBase"`
	EnvelopeFlap   string `yaml:"envelopeFlap"`
	EnvelopeBorder string `yaml:"envelopeBorder"`
	FlapBorder     string `yaml:"flapBorder"`
	EnvelopeLabel  string `yaml:"envelopeLabel"`
	Paper          string `yaml:"paper"`
	PaperLine      string `yaml:"paperLine"`
	Overlay        string `yaml:"overlay"`
	OverlayAlpha   uint8  `yaml:"overlayAlpha"`
	MessageBox     string `yaml:"messageBox"`
	MessageBorder  string `yaml:"messageBorder"`
	ButtonText     string `yaml:"buttonText"`
}

// ResolvedPalette 解析后的配色，可直接用于绘制
type ResolvedPalette struct {
	Background     color.RGBA
	Accent         color.RGBA
	Figure         color.RGBA
	Text           color.RGBA
	OpenHint       color.RGBA
	SaveHint       color.RGBA
	Hearts         color.RGBA
	PetalA         color.RGBA
	PetalB         color.RGBA
	FlowerCenter   color.RGBA
	Stem           color.RGBA
	EnvelopeBase   color.RGBA
	EnvelopeFlap   color.RGBA
	EnvelopeBorder color.RGBA
	FlapBorder     color.RGBA
	EnvelopeLabel  color.RGBA
	Paper          color.RGBA
	PaperLine      color.RGBA
	Overlay        color.RGBA // 已预乘 OverlayAlpha
	MessageBox     color.RGBA
	MessageBorder  color.RGBA
	ButtonText     color.RGBA
}

// LoadCardConfig 从 YAML 数据解析并校验卡片配置
//
// 参数:
//   - data: YAML 内容（通常来自 embedded.ReadFile(CardConfigPath)）
//
// 返回:
//   - *CardConfig: 校验通过的配置
//   - error: 解析或校验失败
func LoadCardConfig(data []byte) (*CardConfig, error) {
	var cfg CardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse card config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadCardConfigFile 从磁盘加载卡片配置（开发工具使用）
func LoadCardConfigFile(path string) (*CardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card config: %w", err)
	}
	return LoadCardConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有文案非空
//   - 所有颜色均为合法的 "#rrggbb"
//
// 通过后解析结果保存在配置中，见 Colors()
func (c *CardConfig) Validate() error {
	texts := []struct {
		field string
		value string
	}{
		{"title", c.Title},
		{"message", c.Message},
		{"messageTitle", c.MessageTitle},
		{"envelopeLabel", c.EnvelopeLabel},
		{"closeLabel", c.CloseLabel},
		{"openHint", c.OpenHint},
		{"saveHint", c.SaveHint},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidCardConfig, t.field)
		}
	}

	colors, err := c.Palette.Resolve()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCardConfig, err)
	}
	c.colors = colors

	return nil
}

// Colors 返回 Validate 解析出的配色
// LoadCardConfig 返回的配置已校验，可以直接使用
func (c *CardConfig) Colors() ResolvedPalette {
	return c.colors
}

// Resolve 将十六进制颜色解析为 color.RGBA
func (p Palette) Resolve() (ResolvedPalette, error) {
	var out ResolvedPalette

	entries := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &out.Background},
		{"accent", p.Accent, &out.Accent},
		{"figure", p.Figure, &out.Figure},
		{"text", p.Text, &out.Text},
		{"openHint", p.OpenHint, &out.OpenHint},
		{"saveHint", p.SaveHint, &out.SaveHint},
		{"hearts", p.Hearts, &out.Hearts},
		{"petalA", p.PetalA, &out.PetalA},
		{"petalB", p.PetalB, &out.PetalB},
		{"flowerCenter", p.FlowerCenter, &out.FlowerCenter},
		{"stem", p.Stem, &out.Stem},
		{"envelopeBase", p.EnvelopeBase, &out.EnvelopeBase},
		{"envelopeFlap", p.EnvelopeFlap, &out.EnvelopeFlap},
		{"envelopeBorder", p.EnvelopeBorder, &out.EnvelopeBorder},
		{"flapBorder", p.FlapBorder, &out.FlapBorder},
		{"envelopeLabel", p.EnvelopeLabel, &out.EnvelopeLabel},
		{"paper", p.Paper, &out.Paper},
		{"paperLine", p.PaperLine, &out.PaperLine},
		{"overlay", p.Overlay, &out.Overlay},
		{"messageBox", p.MessageBox, &out.MessageBox},
		{"messageBorder", p.MessageBorder, &out.MessageBorder},
		{"buttonText", p.ButtonText, &out.ButtonText},
	}

	for _, e := range entries {
		c, err := ParseHexColor(e.hex)
		if err != nil {
			return ResolvedPalette{}, fmt.Errorf("palette.%s: %w", e.name, err)
		}
		*e.dst = c
	}

	out.Overlay = withAlpha(out.Overlay, p.OverlayAlpha)
	return out, nil
}

// ParseHexColor 解析 "#rrggbb" 为不透明的 color.RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// withAlpha 返回预乘 alpha 的颜色（color.RGBA 要求预乘）
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 0xff),
		G: uint8(uint16(c.G) * uint16(a) / 0xff),
		B: uint8(uint16(c.B) * uint16(a) / 0xff),
		A: a,
	}
}
