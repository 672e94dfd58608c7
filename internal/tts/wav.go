package tts

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// PCMFormat describes raw little-endian PCM sample data.
type PCMFormat struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// DefaultPCMFormat is the format Gemini returns speech in: mono, 16-bit, 24 kHz.
var DefaultPCMFormat = PCMFormat{Channels: 1, SampleRate: 24000, BitsPerSample: 16}

const wavHeaderSize = 44

// EncodeWAV wraps raw PCM in a canonical 44-byte RIFF/WAVE header. A
// trailing partial frame is zero-padded to a whole frame.
func EncodeWAV(pcm []byte, f PCMFormat) ([]byte, error) {
	if f.Channels <= 0 || f.SampleRate <= 0 || f.BitsPerSample <= 0 || f.BitsPerSample%8 != 0 {
		return nil, fmt.Errorf("invalid PCM format %+v", f)
	}
	blockAlign := f.Channels * f.BitsPerSample / 8
	dataSize := len(pcm)
	if rem := dataSize % blockAlign; rem != 0 {
		dataSize += blockAlign - rem
	}

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+dataSize))

	// RIFF header
	buf.WriteString("RIFF")
	le32(buf, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt sub-chunk
	buf.WriteString("fmt ")
	le32(buf, 16)
	le16(buf, 1) // PCM
	le16(buf, uint16(f.Channels))
	le32(buf, uint32(f.SampleRate))
	le32(buf, uint32(f.SampleRate*blockAlign))
	le16(buf, uint16(blockAlign))
	le16(buf, uint16(f.BitsPerSample))

	// data sub-chunk
	buf.WriteString("data")
	le32(buf, uint32(dataSize))
	buf.Write(pcm)
	buf.Write(make([]byte, dataSize-len(pcm)))

	return buf.Bytes(), nil
}

func le16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func le32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
