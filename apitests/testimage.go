package apitests

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// testImagePNG builds a minimal but fully valid PNG container: signature,
// IHDR for a 1x1 truecolor image, a single zlib-compressed scanline in IDAT,
// and IEND, with each chunk carrying its CRC. The recognition endpoint only
// needs a decodable image; the content is one red pixel.
func testImagePNG() []byte {
	var buf bytes.Buffer
	buf.Write(pngSignature)

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], 1) // width
	binary.BigEndian.PutUint32(ihdr[4:8], 1) // height
	ihdr[8] = 8                              // bit depth
	ihdr[9] = 2                              // color type: truecolor
	writePNGChunk(&buf, "IHDR", ihdr)

	var pixels bytes.Buffer
	zw := zlib.NewWriter(&pixels)
	zw.Write([]byte{0, 0xff, 0x00, 0x00}) // filter byte, then one RGB pixel
	zw.Close()
	writePNGChunk(&buf, "IDAT", pixels.Bytes())

	writePNGChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func testImageBase64() string {
	return base64.StdEncoding.EncodeToString(testImagePNG())
}

func writePNGChunk(buf *bytes.Buffer, chunkType string, data []byte) {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], chunkType)
	buf.Write(header[:])
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(data)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc.Sum32())
	buf.Write(trailer[:])
}
