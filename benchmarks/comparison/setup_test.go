package comparison

// Shared benchmark inputs - built once at init
var (
	data1KB  []byte
	data64KB []byte
	data1MB  []byte
)

func init() {
	data1KB = makeData(1024)
	data64KB = makeData(64 * 1024)
	data1MB = makeData(1024 * 1024)
}

func makeData(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*31 + 7)
	}
	return buf
}
