package speech

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	wav := EncodeWAV(pcm, 22050, 1)
	gotPCM, rate, channels, err := DecodeWAV(wav)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 22050 {
		t.Errorf("sample rate = %d, want 22050", rate)
	}
	if channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}
	if !bytes.Equal(gotPCM, pcm) {
		t.Errorf("pcm round trip mismatch: got %v, want %v", gotPCM, pcm)
	}
}

func TestDecodeWAVErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte("RIFF")},
		{"wrong magic", bytes.Repeat([]byte{0x00}, 64)},
		{"no data chunk", append([]byte("RIFF\x00\x00\x00\x00WAVE"), bytes.Repeat([]byte{0x00}, 40)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := DecodeWAV(tt.data); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestDecodeWAVStreamedLength(t *testing.T) {
	// 串流輸出常把 data 長度寫成佔位值，實際以檔尾為準
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	wav := EncodeWAV(pcm, 24000, 1)
	// 把 data 長度改成超過實際大小
	wav[len(wav)-len(pcm)-4] = 0xFF
	wav[len(wav)-len(pcm)-3] = 0xFF

	gotPCM, _, _, err := DecodeWAV(wav)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(gotPCM, pcm) {
		t.Errorf("pcm = %v, want %v", gotPCM, pcm)
	}
}
