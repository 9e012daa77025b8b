package game

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// createTestWAV writes a short 16-bit mono PCM WAV file (silence).
func createTestWAV(path string, sampleRate int) error {
	const numSamples = 480
	dataSize := numSamples * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))           // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))   // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.audioCache == nil {
		t.Error("audioCache is nil")
	}
	if rm.fontSourceCache == nil {
		t.Error("fontSourceCache is nil")
	}
	if rm.audioContext != testAudioContext {
		t.Error("audioContext not set correctly")
	}
}

// TestLoadSoundEffect_WAV tests loading and caching a WAV sound effect.
func TestLoadSoundEffect_WAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open_sound.wav")
	if err := createTestWAV(path, 44100); err != nil {
		t.Fatalf("Failed to create test WAV: %v", err)
	}

	rm := NewResourceManager(testAudioContext)
	player, err := rm.LoadSoundEffect(path)
	if err != nil {
		t.Fatalf("LoadSoundEffect failed: %v", err)
	}
	if player == nil {
		t.Fatal("LoadSoundEffect returned nil player")
	}

	again, err := rm.LoadSoundEffect(path)
	if err != nil {
		t.Fatalf("second LoadSoundEffect failed: %v", err)
	}
	if again != player {
		t.Error("expected cached player on second load")
	}
	if rm.audioCache[path] != player {
		t.Error("audioCache does not hold the loaded player")
	}
}

// TestLoadSoundEffect_Errors tests the AssetLoadFailure paths.
func TestLoadSoundEffect_Errors(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.wav")
	if err := os.WriteFile(corrupt, []byte("not a wav file"), 0644); err != nil {
		t.Fatal(err)
	}
	unsupported := filepath.Join(dir, "sound.flac")
	if err := os.WriteFile(unsupported, []byte("fLaC"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		path        string
		notExisting bool
	}{
		{"文件不存在", filepath.Join(dir, "missing.wav"), true},
		{"文件损坏", corrupt, false},
		{"不支持的格式", unsupported, false},
	}

	rm := NewResourceManager(testAudioContext)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := rm.LoadSoundEffect(tt.path)
			if player != nil {
				t.Error("expected nil player on failure")
			}
			if !errors.Is(err, ErrAssetLoad) {
				t.Fatalf("error = %v, want ErrAssetLoad", err)
			}
			if errors.Is(err, fs.ErrNotExist) != tt.notExisting {
				t.Errorf("errors.Is(err, fs.ErrNotExist) = %v, want %v", !tt.notExisting, tt.notExisting)
			}
		})
	}
}

// TestLoadFace 候选字体与内置回退字体的组合
func TestLoadFace(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(broken, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.ttf")
	if err := os.WriteFile(good, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.ttf")

	regular := FontData{Name: "goregular", Data: goregular.TTF}
	bold := FontData{Name: "gobold", Data: gobold.TTF}

	tests := []struct {
		name       string
		candidates []string
		fallbacks  []FontData
		wantMulti  bool
		wantErr    bool
	}{
		{"只有一个回退字体", []string{missing}, []FontData{regular}, false, false},
		{"多个回退字体组合", []string{missing}, []FontData{regular, bold}, true, false},
		{"跳过损坏的候选字体", []string{broken, good}, []FontData{regular}, true, false},
		{"没有回退字体", []string{good}, nil, false, true},
		{"回退字体损坏", nil, []FontData{{Name: "bad", Data: []byte("nope")}}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := NewResourceManager(testAudioContext)
			face, err := rm.LoadFace(tt.candidates, tt.fallbacks, 20)
			if tt.wantErr {
				if !errors.Is(err, ErrAssetLoad) {
					t.Errorf("error = %v, want ErrAssetLoad", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFace failed: %v", err)
			}

			if tt.wantMulti {
				if _, ok := face.(*text.MultiFace); !ok {
					t.Errorf("face type = %T, want *text.MultiFace", face)
				}
			} else {
				goFace, ok := face.(*text.GoTextFace)
				if !ok {
					t.Fatalf("face type = %T, want *text.GoTextFace", face)
				}
				if goFace.Size != 20 {
					t.Errorf("Size = %v, want 20", goFace.Size)
				}
			}

			for _, fb := range tt.fallbacks {
				if _, cached := rm.fontSourceCache[fb.Name]; !cached {
					t.Errorf("fallback %s should be cached", fb.Name)
				}
			}
		})
	}
}

// TestLoadFace_BundledFallback 内置 Roboto 可以作为回退字体加载
func TestLoadFace_BundledFallback(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", config.FallbackFontPath))
	if err != nil {
		t.Fatalf("Failed to read bundled font: %v", err)
	}

	rm := NewResourceManager(testAudioContext)
	face, err := rm.LoadFace(nil, []FontData{
		{Name: config.FallbackFontPath, Data: data},
		{Name: "goregular", Data: goregular.TTF},
	}, config.BodyFontSize)
	if err != nil {
		t.Fatalf("LoadFace failed: %v", err)
	}

	// 越南语文字应有正常宽度
	if w, _ := text.Measure("Chúc mừng ngày Phụ nữ Việt Nam", face, 0); w <= 0 {
		t.Errorf("Measure width = %v, want > 0", w)
	}
}

// TestLoadFontSourceBytes_Invalid rejects data that is not a font.
func TestLoadFontSourceBytes_Invalid(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	if _, err := rm.LoadFontSourceBytes("bad", []byte("nope")); !errors.Is(err, ErrAssetLoad) {
		t.Errorf("error = %v, want ErrAssetLoad", err)
	}
}
