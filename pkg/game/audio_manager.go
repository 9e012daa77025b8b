package game

import (
	"errors"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// DefaultSoundVolume 音效默认音量
const DefaultSoundVolume = 0.8

// AudioManager 音频管理器
// 职责：
//   - 持有可选的"打开信封"音效
//   - 加载失败时降级为无声，不向上传播错误
//   - 播放失败只记录日志
type AudioManager struct {
	openSound *audio.Player // 打开信封音效，nil 表示无音效
}

// NewAudioManager 创建音频管理器并尝试加载可选音效
//
// 参数：
//   - rm: ResourceManager 实例（可为 nil，此时直接降级为无声）
//   - soundPath: 音效文件路径（相对工作目录）
//
// 返回：
//   - *AudioManager: 总是返回可用实例；音效不可用时 HasOpenSound() 为 false
func NewAudioManager(rm *ResourceManager, soundPath string) *AudioManager {
	am := &AudioManager{}
	if rm == nil {
		return am
	}

	player, err := rm.LoadSoundEffect(soundPath)
	switch {
	case err == nil:
		am.openSound = player
		log.Printf("[AudioManager] Loaded open sound: %s", soundPath)
	case errors.Is(err, fs.ErrNotExist):
		// 音效文件是可选的，不存在时静默降级
		log.Printf("[AudioManager] Open sound %s not present, sound disabled", soundPath)
	default:
		log.Printf("[AudioManager] Warning: Failed to load open sound: %v (sound disabled)", err)
	}

	return am
}

// HasOpenSound 是否有可播放的打开音效
func (am *AudioManager) HasOpenSound() bool {
	return am.openSound != nil
}

// PlayOpenSound 从头播放打开音效
//
// 返回：
//   - bool: 是否播放（无音效时返回 false）
func (am *AudioManager) PlayOpenSound() bool {
	if am.openSound == nil {
		return false
	}

	am.openSound.SetVolume(DefaultSoundVolume)

	// 重置并播放
	if err := am.openSound.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind open sound: %v", err)
	}
	am.openSound.Play()

	return true
}

// Close 停止并释放音效播放器
func (am *AudioManager) Close() {
	if am.openSound == nil {
		return
	}
	am.openSound.Pause()
	if err := am.openSound.Close(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to close open sound: %v", err)
	}
	am.openSound = nil
}
