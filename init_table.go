package nv6001

// initCmd is one record of the vendor bring-up sequence.
type initCmd struct {
	cmd    byte
	params []byte

	// bare commands are sent without any parameter bytes.
	bare bool
}

// initSequence is the vendor initialization table, replayed in order by New.
//
// The trailing double RAMWR is part of the vendor sequence.
var initSequence = []initCmd{
	{cmd: 0xC0, params: []byte{0x5A, 0x5A}},
	{cmd: 0xC1, params: []byte{0x5A, 0x5A}},
	{cmd: 0xD0, params: []byte{0x10}},
	{cmd: 0xB1, params: []byte{
		0xEA, 0xF0, 0x00, 0x78, 0x00, 0x0C, 0x00, 0x08, 0x00, 0x1C, 0x00, 0x1C, 0x00, 0x0C, 0x00, 0x08,
		0x00, 0x1C, 0x00, 0x1C, 0x00, 0x00, 0x0C, 0x00, 0x5F, 0x00, 0x1C, 0x00, 0x1C, 0x00, 0x0C, 0x00,
		0x5F, 0x00, 0x1C, 0x00, 0x1C, 0x00, 0x00, 0x20, 0x00, 0x00, 0x77, 0x00, 0x00, 0x00, 0xEF, 0x00,
		0x00, 0x00, 0x10,
	}},
	{cmd: 0xB2, params: []byte{
		0x13, 0x13, 0x04, 0x04, 0x13, 0x04, 0x04, 0x13, 0x13, 0x04, 0x04, 0x04, 0x04, 0x0F, 0x00, 0x00,
		0x5E, 0x00, 0xA6, 0x00, 0x5E, 0x00, 0xA9, 0x00, 0x5E, 0x00, 0x03, 0x00, 0x5E, 0x00, 0x00, 0x00,
		0x5E, 0x00, 0xA6, 0x00, 0x5E, 0x00, 0xA9, 0x00, 0x5E, 0x00, 0x03, 0x00, 0x5E, 0x00, 0x02, 0x1F,
		0x58, 0x75, 0x00, 0x01, 0x00, 0x00, 0x31, 0x5A, 0x1A, 0xD5, 0x3D, 0x60, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x13, 0x77,
	}},
	{cmd: 0xB3, params: []byte{
		0x00, 0x00, 0x00, 0x03, 0x02, 0x01, 0x00, 0x00, 0x00, 0x14, 0x13, 0x12, 0x00, 0x00, 0x00, 0x00,
		0x06, 0x05, 0x04, 0x00, 0x00, 0x00, 0x0F, 0x0E, 0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xB4, params: []byte{
		0x20, 0x03, 0xC0, 0x00, 0x08, 0x03, 0x03, 0x03, 0x03, 0x03, 0x00, 0x0B, 0x0B, 0x0B, 0x0B, 0x0B,
		0x0B, 0x14, 0x41, 0x25, 0x52, 0x36, 0x63, 0x41, 0x14, 0x52, 0x25, 0x63, 0x36, 0x14, 0x41, 0x25,
		0x52, 0x36, 0x63, 0x41, 0x14, 0x52, 0x25, 0x63, 0x36, 0x00, 0x00, 0x2A, 0x15, 0x2A, 0x15, 0x15,
		0x2A, 0x15, 0x2A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xB5, params: []byte{
		0x00, 0x00, 0x09, 0x09, 0x01, 0x29, 0x10, 0x00, 0x01, 0x32, 0x00, 0x32, 0x00, 0x63, 0x00, 0xAD,
		0x00, 0x63, 0x00, 0xAD, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x02, 0x01, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x0B,
		0x00, 0x55, 0x00, 0x0B, 0x00, 0x55, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00,
	}},
	{cmd: 0xB8, params: []byte{
		0x00, 0xE7, 0x30, 0x00, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x22, 0x22, 0x22, 0x00, 0x00, 0x22,
		0x22, 0x22, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xBB, params: []byte{0x01, 0xC8, 0xC8, 0xC8, 0x80, 0x80, 0x80, 0x4C, 0x59, 0x66}},
	{cmd: 0xBD, params: []byte{
		0x01, 0x00, 0x0A, 0x00, 0x32, 0x00, 0x04, 0x01, 0x05, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x14, 0x01, 0x00, 0x00, 0x00, 0x10, 0x03, 0x03, 0x00,
	}},
	{cmd: 0xBE, bare: true},
	{cmd: 0xC2, params: []byte{0xFC}},
	{cmd: 0xC3, params: []byte{0x00, 0x00, 0xFF, 0x07, 0x00, 0x00, 0xFF, 0x07, 0x00, 0x00, 0xFF, 0x04}},
	{cmd: 0xC5, bare: true},
	{cmd: 0xC6, bare: true},
	{cmd: 0xD4, params: []byte{0x00, 0x78, 0x00, 0xF0, 0x00, 0x08, 0x08, 0x14, 0x14, 0x00, 0x00}},
	{cmd: 0xD5, params: []byte{
		0x01, 0x00, 0x37, 0x00, 0x01, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x01, 0x00,
		0x37, 0x00, 0x01, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x05, 0x00, 0xEC, 0x00, 0x05, 0x00,
		0x00, 0x00, 0x05, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xD6, params: []byte{
		0x01, 0x00, 0x37, 0x00, 0x01, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x01, 0x00,
		0x37, 0x00, 0x01, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x05, 0x00, 0xEC, 0x00, 0x05, 0x00,
		0x00, 0x00, 0x05, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xD7, params: []byte{
		0x01, 0x00, 0x37, 0x00, 0x01, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x01, 0x00,
		0x37, 0x00, 0x01, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x05, 0x00, 0xEC, 0x00, 0x05, 0x00,
		0x00, 0x00, 0x05, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xD8, params: []byte{
		0x01, 0x00, 0x37, 0x00, 0x01, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0xBF, 0x00, 0x04, 0x00, 0x01, 0x00,
		0x37, 0x00, 0x01, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x05, 0x00, 0xEC, 0x00, 0x05, 0x00,
		0x00, 0x00, 0x05, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xDE, params: []byte{0x00, 0x00, 0x00}},
	{cmd: 0xDF, params: []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08,
		0x00, 0x06, 0x55, 0x50, 0xFF, 0xFF, 0x08, 0x08, 0x08,
	}},
	{cmd: 0xEE, params: []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xF0, params: []byte{
		0x75, 0x2A, 0x70, 0x70, 0x70, 0x58, 0x2F, 0x1C, 0x1C, 0x8A, 0x8A, 0x10, 0x10, 0x75, 0x2A, 0x70,
		0x70, 0x70, 0x58, 0x25, 0x1C, 0x1C, 0x8A, 0x8A, 0x10, 0x10,
	}},
	{cmd: 0xF1, params: []byte{0x11, 0x6E, 0x49, 0xD0, 0x95, 0x15, 0xA5, 0x55, 0x0E, 0x10, 0xC6}},
	{cmd: 0xF2, params: []byte{0x75, 0x2A, 0x08, 0x70, 0x70, 0x58, 0x2F, 0x03, 0x1A, 0x8A, 0x8A, 0x10, 0x0B}},
	{cmd: 0xF3, params: []byte{0x11, 0x60, 0x41, 0x10, 0x95, 0x15, 0xA5, 0x55, 0x0E, 0x10}},
	{cmd: 0xF4, params: []byte{
		0x0B, 0x00, 0x00, 0x75, 0x2A, 0x78, 0xF0, 0xF0, 0x41, 0x33, 0x10, 0x95, 0x15, 0xA5, 0x55, 0x10,
		0x0E, 0x0E,
	}},
	{cmd: 0xF5, params: []byte{
		0x3F, 0x53, 0x01, 0x11, 0x19, 0x0A, 0x29, 0x01, 0x03, 0x05, 0x07, 0x09, 0x0B, 0x0D, 0x0F, 0x11,
		0x00, 0x01, 0x01, 0x3F, 0x53, 0x31, 0x11, 0x19, 0x0A, 0x29, 0x01, 0x03, 0x05, 0x07, 0x09, 0x0B,
		0x0D, 0x0F, 0x11, 0x01, 0x10, 0x10,
	}},
	{cmd: 0xF6, params: []byte{
		0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x02, 0x02, 0x02, 0x03, 0x04, 0x04, 0x07, 0x07, 0x08, 0x08,
		0x08, 0x02, 0x02, 0x04, 0x04, 0x0B, 0x0B, 0x0B, 0x0B, 0x4B, 0x4B, 0x0B, 0x0C, 0x0C, 0x0D, 0x0E,
		0x10, 0x03, 0x04, 0x42, 0x02, 0x11, 0x00,
	}},
	{cmd: 0xF7, params: []byte{
		0x55, 0x55, 0x55, 0x55, 0x44, 0x34, 0x23, 0x22, 0x41, 0x34, 0x13, 0x11, 0x11, 0x11, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x02, 0x00, 0x04, 0x01, 0x02,
	}},
	{cmd: 0xF8, params: []byte{
		0x55, 0x55, 0x55, 0x55, 0x44, 0x34, 0x23, 0x22, 0x41, 0x34, 0x13, 0x11, 0x11, 0x11, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}},
	{cmd: 0xFE, params: []byte{0x00, 0x01, 0x02, 0x03}},
	{cmd: 0x8E, params: make([]byte, 20)},
	{cmd: 0x8F, params: make([]byte, 33)},
	{cmd: 0x90, params: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	{cmd: 0x91, params: make([]byte, 20)},
	{cmd: 0x92, params: make([]byte, 20)},
	{cmd: 0x93, params: make([]byte, 20)},
	{cmd: 0x94, params: make([]byte, 20)},
	{cmd: 0x95, params: make([]byte, 17)},
	{cmd: 0x96, params: make([]byte, 17)},
	{cmd: 0x97, params: make([]byte, 17)},
	{cmd: 0x98, params: make([]byte, 17)},
	{cmd: 0x99, params: make([]byte, 17)},
	{cmd: 0x9A, params: make([]byte, 17)},
	{cmd: 0x9C, params: make([]byte, 96)},
	{cmd: 0x9D, bare: true},
	{cmd: 0xB6, params: []byte{0x00, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x00, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}},
	{cmd: 0xB9, params: make([]byte, 97)},
	{cmd: 0xBC, params: []byte{0x00, 0x01, 0x23, 0x45, 0x67, 0x01, 0x23, 0x45, 0x67, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	{cmd: 0xBF, params: make([]byte, 30)},
	{cmd: 0xC8, params: []byte{0x00, 0x00, 0x00}},
	{cmd: 0xCF, params: []byte{0x01}},
	{cmd: 0xDD, params: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	{cmd: 0xE5, params: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	{cmd: 0xE6, params: []byte{0x8C, 0x00, 0x00}},
	{cmd: 0xE8, params: []byte{0x00}},
	{cmd: 0xEF, params: []byte{0x00, 0x11, 0x32, 0xFF, 0x01, 0x32, 0xFF, 0x01}},
	{cmd: 0xFB, params: []byte{0x10, 0x05, 0x01, 0x00, 0x05, 0x00}},
	{cmd: 0xFC, params: []byte{0x00, 0x00, 0x00}},
	{cmd: nvSLPOUT, bare: true},
	{cmd: nvCASET, params: []byte{0x00, 0x77, 0x00, 0xEF}},
	{cmd: nvRASET, params: []byte{0x00, 0xEF, 0x01, 0x3F}},
	{cmd: nvTESCAN, params: []byte{0x00, 0xEF}},
	{cmd: nvTEON, params: []byte{0x00}},
	{cmd: nvWRCTRLD, params: []byte{0x28}},
	{cmd: nvMADCTL, params: []byte{0xC0}},
	{cmd: nvCOLMOD, params: []byte{0x55}},
	{cmd: nvDISPON, bare: true},
	{cmd: nvIDMON, bare: true},
	{cmd: nvRAMWR},
	{cmd: nvRAMWR},
}
