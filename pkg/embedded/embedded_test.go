package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// 测试用的内存文件系统
// 真正的资源嵌入在项目根目录的 embed.go 中，这里只验证接口行为。
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/card.yaml": &fstest.MapFile{Data: []byte("title: test\n")},
	}
}

// reset 重置包状态以避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

// TestNotInitialized 测试未初始化时的访问
func TestNotInitialized(t *testing.T) {
	tests := []struct {
		name string
		init func()
	}{
		{"从未初始化", func() {}},
		{"nil 文件系统", func() { Init(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			defer reset()
			tt.init()

			if _, err := ReadFile("data/card.yaml"); !errors.Is(err, ErrNotInitialized) {
				t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
			}
		})
	}
}

// TestReadFile 测试读取嵌入文件
func TestReadFile(t *testing.T) {
	reset()
	defer reset()
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/card.yaml", "title: test\n", false},
		{"带 ./ 前缀", "./data/card.yaml", "title: test\n", false},
		{"未知前缀", "assets/card.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}
