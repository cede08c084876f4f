package blake

// Round counts per family. The 32-bit family (BLAKE-224/256) runs 14
// rounds over 64-byte blocks; the 64-bit family (BLAKE-384/512) runs 16
// rounds over 128-byte blocks.
const (
	rounds32 = 14
	rounds64 = 16
)

// sigma is the message/constant permutation schedule shared by both
// families. Rounds beyond the tenth reuse the schedule modulo 10.
var sigma = [10][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// u256 holds the 32-bit round constants: the first sixteen words of the
// fractional part of pi.
var u256 = [16]uint32{
	0x243F6A88, 0x85A308D3, 0x13198A2E, 0x03707344,
	0xA4093822, 0x299F31D0, 0x082EFA98, 0xEC4E6C89,
	0x452821E6, 0x38D01377, 0xBE5466CF, 0x34E90C6C,
	0xC0AC29B7, 0xC97C50DD, 0x3F84D5B5, 0xB5470917,
}

// u512 holds the 64-bit round constants: the same pi expansion taken as
// sixteen 64-bit words.
var u512 = [16]uint64{
	0x243F6A8885A308D3, 0x13198A2E03707344,
	0xA4093822299F31D0, 0x082EFA98EC4E6C89,
	0x452821E638D01377, 0xBE5466CF34E90C6C,
	0xC0AC29B7C97C50DD, 0x3F84D5B5B5470917,
	0x9216D5D98979FB1B, 0xD1310BA698DFB5AC,
	0x2FFD72DBD01ADFB7, 0xB8E1AFED6A267E96,
	0xBA7C9045F12C7F99, 0x24A19947B3916CF7,
	0x0801F2E2858EFC16, 0x636920D871574E69,
}

// Initialization vectors. Each family has two: one for the variant whose
// output equals the full chaining width (256, 512) and one for the
// truncated sibling (224, 384). They are the SHA-2 initialization values
// of the matching output lengths.
var (
	iv224 = [8]uint32{
		0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
		0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
	}
	iv256 = [8]uint32{
		0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
		0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
	}
	iv384 = [8]uint64{
		0xCBBB9D5DC1059ED8, 0x629A292A367CD507,
		0x9159015A3070DD17, 0x152FECD8F70E5939,
		0x67332667FFC00B31, 0x8EB44A8768581511,
		0xDB0C2E0D64F98FA7, 0x47B5481DBEFA4FA4,
	}
	iv512 = [8]uint64{
		0x6A09E667F3BCC908, 0xBB67AE8584CAA73B,
		0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
		0x510E527FADE682D1, 0x9B05688C2B3E6C1F,
		0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
	}
)

// padding supplies the 0x80 terminator byte followed by zero fill for
// both block sizes.
var padding = [128]byte{0x80}
