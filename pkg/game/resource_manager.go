package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for loading and caching the card's external resources:
// the optional one-shot sound effect and the font faces used for all text.
//
// Every load failure is returned wrapped in ErrAssetLoad so callers can decide whether
// the resource is optional (sound) or required (fonts).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches use plain maps; the card runs a
// single-threaded game loop, so no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	player, err := rm.LoadSoundEffect("open_sound.wav")
//	if err != nil {
//	    log.Printf("Failed to load sound: %v", err)
//	}
type ResourceManager struct {
	audioCache      map[string]*audio.Player          // Cache for loaded audio players: path -> Player
	audioContext    *audio.Context                    // Global audio context for decoding and playback
	fontSourceCache map[string]*text.GoTextFaceSource // Cache for parsed font sources: path or name -> source
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:      make(map[string]*audio.Player),
		audioContext:    audioContext,
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
	}
}

// LoadSoundEffect loads a one-shot sound effect from the specified path and caches it.
// The stream is resampled to the audio context's sample rate and is NOT looped.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Parameters:
//   - path: The file path to the sound effect (e.g., "open_sound.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error wrapping ErrAssetLoad if the file cannot be read or decoded.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// Read the entire file into memory so the stream can seek without keeping the file open
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sound effect file %s: %w", ErrAssetLoad, path, err)
	}

	stream, err := rm.decodeAudio(path, bytes.NewReader(audioData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}

	// Create an audio player WITHOUT infinite loop
	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create audio player for %s: %w", ErrAssetLoad, path, err)
	}

	// Store in cache
	rm.audioCache[path] = player

	return player, nil
}

// decodeAudio picks a decoder by file extension
func (rm *ResourceManager) decodeAudio(path string, reader io.ReadSeeker) (io.ReadSeeker, error) {
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// LoadFontSource parses a TrueType/OpenType font file and caches the source.
//
// Returns:
//   - The parsed font source.
//   - An error wrapping ErrAssetLoad if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	if cached, exists := rm.fontSourceCache[path]; exists {
		return cached, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read font file %s: %w", ErrAssetLoad, path, err)
	}

	return rm.LoadFontSourceBytes(path, fontData)
}

// LoadFontSourceBytes parses an in-memory font (e.g., one of the bundled Go fonts) and
// caches it under name.
func (rm *ResourceManager) LoadFontSourceBytes(name string, fontData []byte) (*text.GoTextFaceSource, error) {
	if cached, exists := rm.fontSourceCache[name]; exists {
		return cached, nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create font source for %s: %w", ErrAssetLoad, name, err)
	}

	rm.fontSourceCache[name] = source
	return source, nil
}

// FontData is an in-memory font (embedded or bundled) identified by a cache name.
type FontData struct {
	Name string
	Data []byte
}

// LoadFace builds a text face of the given size.
//
// The first candidate file that loads becomes the primary face. The fallbacks are always
// appended in order, so glyphs missing from earlier faces are taken from later ones. When
// no candidate loads, the fallbacks alone are used.
//
// Parameters:
//   - candidates: Font file paths tried in order (missing files are skipped silently).
//   - fallbacks: In-memory fonts appended after the candidate, at least one.
//   - size: The font size in pixels.
func (rm *ResourceManager) LoadFace(candidates []string, fallbacks []FontData, size float64) (text.Face, error) {
	if len(fallbacks) == 0 {
		return nil, fmt.Errorf("%w: no fallback font given", ErrAssetLoad)
	}

	faces := make([]text.Face, 0, len(fallbacks)+1)

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		source, err := rm.LoadFontSource(path)
		if err != nil {
			log.Printf("[ResourceManager] Warning: skipping font %s: %v", path, err)
			continue
		}

		faces = append(faces, newGoTextFace(source, size))
		log.Printf("[ResourceManager] Using font %s (%.0fpx)", path, size)
		break
	}

	for _, fb := range fallbacks {
		source, err := rm.LoadFontSourceBytes(fb.Name, fb.Data)
		if err != nil {
			return nil, err
		}
		faces = append(faces, newGoTextFace(source, size))
	}

	if len(faces) == 1 {
		return faces[0], nil
	}

	face, err := text.NewMultiFace(faces...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to combine font faces: %w", ErrAssetLoad, err)
	}
	return face, nil
}

func newGoTextFace(source *text.GoTextFaceSource, size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
}
