package bytecode

import "encoding/binary"

// appendByte, appendUint16LE, appendInt16LE, and appendInt32LE are the
// low-level little-endian encoders the Emitter's buffer writes route
// through. Keeping the byte-order concern in one place is what keeps
// the reference's "byte-vs-word length bug" from recurring here: any
// length or operand field always goes through appendUint16LE/
// appendInt16LE, never a single appendByte.

func appendByte(buf []byte, v byte) []byte {
	return append(buf, v)
}

func appendUint16LE(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendInt16LE(buf []byte, v int16) []byte {
	return appendUint16LE(buf, uint16(v))
}

func appendInt32LE(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

func putUint16LE(buf []byte, at int, v uint16) {
	binary.LittleEndian.PutUint16(buf[at:at+2], v)
}

func putInt16LE(buf []byte, at int, v int16) {
	putUint16LE(buf, at, uint16(v))
}
