package speech

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// DecodeWAV 解出 RIFF/WAVE 容器內的 PCM 與取樣參數
// 只接受 16-bit PCM，這是本地合成引擎固定的輸出格式
func DecodeWAV(wav []byte) (pcm []byte, sampleRate, channels int, err error) {
	if len(wav) < 44 {
		return nil, 0, 0, errors.New("wav data too short")
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, 0, 0, errors.New("not a valid WAV file")
	}

	// 逐塊掃描 fmt 與 data
	pos := 12
	for pos < len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 || pos+8+16 > len(wav) {
				return nil, 0, 0, errors.New("malformed fmt chunk")
			}
			format := binary.LittleEndian.Uint16(wav[pos+8 : pos+10])
			bits := binary.LittleEndian.Uint16(wav[pos+22 : pos+24])
			if format != 1 || bits != 16 {
				return nil, 0, 0, errors.New("only 16-bit PCM WAV is supported")
			}
			channels = int(binary.LittleEndian.Uint16(wav[pos+10 : pos+12]))
			sampleRate = int(binary.LittleEndian.Uint32(wav[pos+12 : pos+16]))
		case "data":
			start := pos + 8
			end := start + chunkSize
			if end > len(wav) {
				// 串流輸出的 WAV 常把 data 長度寫成 0 或佔位值
				end = len(wav)
			}
			pcm = wav[start:end]
		}

		pos += 8 + chunkSize
		// 塊以 word 對齊
		if chunkSize%2 != 0 {
			pos++
		}
	}

	if sampleRate == 0 || channels == 0 {
		return nil, 0, 0, errors.New("fmt chunk not found in WAV")
	}
	if pcm == nil {
		return nil, 0, 0, errors.New("data chunk not found in WAV")
	}
	return pcm, sampleRate, channels, nil
}

// EncodeWAV 把 16-bit PCM 包回 RIFF/WAVE 容器
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	var buf bytes.Buffer
	dataLen := uint32(len(pcm))
	byteRate := uint32(sampleRate * channels * 2)
	blockAlign := uint16(channels * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(16)) // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)

	return buf.Bytes()
}
