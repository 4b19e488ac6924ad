package bunk

// runningCode increases the apparent entropy of payload bytes. It XORs b with
// a fixed value depending on index, repeating every 256 indices, and so undoes
// itself for the same index:
//
//	runningCode(runningCode(b, i), i) == b
//
// It is applied to payload bytes only, never to checksum bytes.
func runningCode(b byte, index int) byte {
	return b ^ entropyTable[index&0xFF]
}

// entropyTable is a fixed permutation of 0..255.
var entropyTable = [256]byte{
	0xa4, 0xff, 0xa2, 0x52, 0xfb, 0x17, 0xcb, 0xef, 0xf4, 0xfd, 0xcc, 0xf8, 0x16, 0x18, 0x9c, 0x6b,
	0x19, 0xf2, 0x45, 0x88, 0x22, 0x6c, 0x92, 0x0b, 0xca, 0x8f, 0x7c, 0x90, 0x7d, 0x1b, 0x5c, 0x02,
	0xe3, 0x7a, 0xba, 0xda, 0xbd, 0x6d, 0x94, 0x1e, 0x54, 0xb3, 0xf0, 0xce, 0x61, 0x7e, 0x70, 0x04,
	0xad, 0xb6, 0x4c, 0x40, 0x0c, 0xab, 0xc3, 0x3a, 0x68, 0x4a, 0x0a, 0xa0, 0xa9, 0x12, 0x74, 0x46,
	0x26, 0x51, 0x62, 0x57, 0xd8, 0xb9, 0xfc, 0xf3, 0x7f, 0x03, 0xeb, 0x76, 0x97, 0x8c, 0x34, 0xc1,
	0x15, 0x3e, 0xc7, 0x91, 0x93, 0x8b, 0x95, 0x78, 0x37, 0x0e, 0x59, 0x14, 0x1c, 0xaf, 0xc0, 0xd1,
	0x6f, 0xe0, 0x9d, 0x83, 0xc9, 0xc2, 0xd4, 0x2f, 0xcf, 0xed, 0xbc, 0x9f, 0x24, 0x2c, 0x5e, 0x48,
	0xe5, 0xec, 0xc4, 0x7b, 0x99, 0x5b, 0x08, 0x81, 0xd9, 0xea, 0x58, 0x33, 0x36, 0x8a, 0xdd, 0x0f,
	0xc8, 0x21, 0x25, 0xcd, 0xa7, 0x86, 0xa8, 0x4f, 0x3f, 0xa6, 0x98, 0x71, 0x13, 0x64, 0x9a, 0xf6,
	0x9e, 0x85, 0x29, 0x87, 0x89, 0x8d, 0x8e, 0xb0, 0x4b, 0x65, 0x1a, 0xe6, 0x6a, 0x4e, 0xd3, 0x3c,
	0x2a, 0x3d, 0xd6, 0x5f, 0xd7, 0x38, 0x1d, 0xb1, 0x73, 0x43, 0xb7, 0x50, 0x3b, 0x72, 0xa1, 0x35,
	0x00, 0xa3, 0x42, 0xbb, 0x63, 0x07, 0xee, 0x66, 0x60, 0x2d, 0x10, 0x5d, 0xe2, 0xbe, 0xf5, 0xb5,
	0xbf, 0xa5, 0x39, 0xf9, 0xe9, 0x0d, 0x79, 0xfe, 0x01, 0x75, 0xac, 0x06, 0xe1, 0xaa, 0xf7, 0x5a,
	0xdc, 0x23, 0x67, 0x41, 0x49, 0xb2, 0x31, 0x05, 0x55, 0xe8, 0x82, 0xd5, 0x9b, 0xd2, 0x56, 0xf1,
	0x47, 0x53, 0xdb, 0x27, 0x77, 0xb4, 0x28, 0x20, 0x96, 0xde, 0xe4, 0xc5, 0x84, 0xfa, 0x69, 0xae,
	0xc6, 0xe7, 0x2e, 0x30, 0x32, 0x80, 0x6e, 0x44, 0xb8, 0x1f, 0x11, 0x09, 0xd0, 0xdf, 0x4d, 0x2b,
}
