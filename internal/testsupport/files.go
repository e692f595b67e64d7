package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Chtimes pins the file's modification time so mtime-based assertions are
// stable.
func Chtimes(t testing.TB, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// WriteJPEGWithEXIF writes a minimal but structurally valid JPEG whose EXIF
// block carries the given DateTimeOriginal. The fixture is a real JPEG as
// far as magic-byte sniffers and EXIF parsers are concerned.
func WriteJPEGWithEXIF(t testing.TB, path string, taken time.Time) {
	t.Helper()
	WriteFile(t, path, JPEGWithEXIF(taken))
}

// JPEGWithEXIF builds the fixture bytes for WriteJPEGWithEXIF.
func JPEGWithEXIF(taken time.Time) []byte {
	// TIFF body, little endian. IFD0 holds a single ExifIFDPointer; the
	// Exif sub-IFD holds DateTimeOriginal as a 20-byte ASCII value stored
	// out of line.
	const (
		ifd0Offset    = 8
		exifIFDOffset = ifd0Offset + 2 + 12 + 4
		dateOffset    = exifIFDOffset + 2 + 12 + 4
	)

	var tiff bytes.Buffer
	tiff.WriteString("II")
	le := binary.LittleEndian
	binary.Write(&tiff, le, uint16(0x002A))
	binary.Write(&tiff, le, uint32(ifd0Offset))

	// IFD0: one entry, tag 0x8769 (ExifIFDPointer, LONG).
	binary.Write(&tiff, le, uint16(1))
	binary.Write(&tiff, le, uint16(0x8769))
	binary.Write(&tiff, le, uint16(4))
	binary.Write(&tiff, le, uint32(1))
	binary.Write(&tiff, le, uint32(exifIFDOffset))
	binary.Write(&tiff, le, uint32(0))

	// Exif IFD: one entry, tag 0x9003 (DateTimeOriginal, ASCII, 20 bytes).
	binary.Write(&tiff, le, uint16(1))
	binary.Write(&tiff, le, uint16(0x9003))
	binary.Write(&tiff, le, uint16(2))
	binary.Write(&tiff, le, uint32(20))
	binary.Write(&tiff, le, uint32(dateOffset))
	binary.Write(&tiff, le, uint32(0))

	tiff.WriteString(taken.Format("2006:01:02 15:04:05"))
	tiff.WriteByte(0)

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	var jpeg bytes.Buffer
	jpeg.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&jpeg, binary.BigEndian, uint16(len(payload)+2))
	jpeg.Write(payload)
	jpeg.Write([]byte{0xFF, 0xD9})
	return jpeg.Bytes()
}

// WriteMP4WithCreationTime writes a minimal MP4: an ftyp box and a moov/mvhd
// whose creation time encodes taken. A zero taken writes the container's
// "unknown" sentinel.
func WriteMP4WithCreationTime(t testing.TB, path string, taken time.Time) {
	t.Helper()
	WriteFile(t, path, MP4WithCreationTime(taken))
}

// MP4WithCreationTime builds the fixture bytes for WriteMP4WithCreationTime.
func MP4WithCreationTime(taken time.Time) []byte {
	mp4Epoch := time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	var creation uint32
	if !taken.IsZero() {
		creation = uint32(taken.UTC().Sub(mp4Epoch) / time.Second)
	}

	be := binary.BigEndian
	var buf bytes.Buffer

	// ftyp
	binary.Write(&buf, be, uint32(20))
	buf.WriteString("ftyp")
	buf.WriteString("isom")
	binary.Write(&buf, be, uint32(0x200))
	buf.WriteString("mp42")

	// mvhd version 0: fixed 100-byte payload.
	var mvhd bytes.Buffer
	binary.Write(&mvhd, be, uint32(0))        // version + flags
	binary.Write(&mvhd, be, creation)         // creation_time
	binary.Write(&mvhd, be, creation)         // modification_time
	binary.Write(&mvhd, be, uint32(1000))     // timescale
	binary.Write(&mvhd, be, uint32(0))        // duration
	binary.Write(&mvhd, be, uint32(0x10000))  // rate 1.0
	binary.Write(&mvhd, be, uint16(0x100))    // volume 1.0
	mvhd.Write(make([]byte, 2+8))             // reserved
	for _, v := range [9]uint32{0x10000, 0, 0, 0, 0x10000, 0, 0, 0, 0x40000000} {
		binary.Write(&mvhd, be, v) // identity matrix
	}
	mvhd.Write(make([]byte, 24))       // pre_defined
	binary.Write(&mvhd, be, uint32(2)) // next_track_ID

	// moov wrapping mvhd
	binary.Write(&buf, be, uint32(8+8+mvhd.Len()))
	buf.WriteString("moov")
	binary.Write(&buf, be, uint32(8+mvhd.Len()))
	buf.WriteString("mvhd")
	buf.Write(mvhd.Bytes())

	return buf.Bytes()
}
