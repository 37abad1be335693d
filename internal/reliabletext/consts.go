package reliabletext

const (
	// LineSeparator is the only character that splits reliable text into lines.
	LineSeparator = "\n"

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes.
	UTF16CodeUnitSize = 2

	// UTF32CodeUnitSize is the size of a UTF-32 code unit in bytes.
	UTF32CodeUnitSize = 4
)

var (
	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16BEBOM is the byte order mark for UTF-16 big-endian.
	UTF16BEBOM = []byte{0xFE, 0xFF}

	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF32BEBOM is the byte order mark for UTF-32 big-endian.
	UTF32BEBOM = []byte{0x00, 0x00, 0xFE, 0xFF}
)
