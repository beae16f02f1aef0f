package bytecode

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Disassemble renders a complete .cl0 file: the procedure count
// header, each procedure's ENTRY_PROC header and body, and the
// trailing constant pool. It never trusts the declared procedure
// count for loop bounds — END_OF_CODE is absent, so the reader scans
// until data runs out and reports a mismatch instead of hanging.
func Disassemble(data []byte, w io.Writer) error {
	if len(data) < 2 {
		return fmt.Errorf("disassemble: file too short for procedure-count header (%d bytes)", len(data))
	}
	declared := binary.LittleEndian.Uint16(data[0:2])
	fmt.Fprintf(w, "; procedures declared: %d\n", declared)

	offset := 2
	procIndex := 0
	for offset < len(data) {
		start := offset
		if offset+5 > len(data) || OpCode(data[offset]) != OpEntryProc {
			break
		}
		length := int(binary.LittleEndian.Uint16(data[offset+1 : offset+3]))
		index := binary.LittleEndian.Uint16(data[offset+3 : offset+5])
		frameSize := binary.LittleEndian.Uint16(data[offset+5 : offset+7])
		fmt.Fprintf(w, "\nprocedure %d (index=%d frameSize=%d length=%d)\n", procIndex, index, frameSize, length)

		bodyEnd := start + length
		if bodyEnd > len(data) || length < 7 {
			return fmt.Errorf("disassemble: procedure %d declares length %d past end of file", procIndex, length)
		}
		disassembleBody(data[start+7:bodyEnd], start+7, w)

		offset = bodyEnd
		procIndex++
	}

	if procIndex != int(declared) {
		fmt.Fprintf(w, "\n; warning: declared %d procedures, found %d\n", declared, procIndex)
	}

	remaining := len(data) - offset
	if remaining > 0 {
		fmt.Fprintf(w, "\nconstant pool (%d entries):\n", remaining/4)
		for i := offset; i+4 <= len(data); i += 4 {
			v := int32(binary.LittleEndian.Uint32(data[i : i+4]))
			fmt.Fprintf(w, "  [%04d] %d\n", (i-offset)/4, v)
		}
		if remaining%4 != 0 {
			fmt.Fprintf(w, "; warning: %d trailing bytes do not form a whole constant\n", remaining%4)
		}
	}

	return nil
}

// disassembleBody walks one procedure's instruction stream, printing
// each instruction's file offset, mnemonic, and operands.
func disassembleBody(body []byte, baseOffset int, w io.Writer) {
	i := 0
	for i < len(body) {
		op := OpCode(body[i])
		fmt.Fprintf(w, "  %04d  %s", baseOffset+i, op.String())

		if op == OpPutStrg {
			end := i + 1
			for end < len(body) && body[end] != 0 {
				end++
			}
			fmt.Fprintf(w, " %q\n", string(body[i+1:end]))
			i = end + 1
			continue
		}

		n := op.OperandCount()
		if n < 0 {
			n = 0
		}
		for k := 0; k < n; k++ {
			start := i + 1 + k*2
			if start+2 > len(body) {
				fmt.Fprintf(w, " <truncated>")
				break
			}
			v := int16(binary.LittleEndian.Uint16(body[start : start+2]))
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintln(w)
		i += 1 + n*2
	}
}

// DisassembleToString is a convenience wrapper over Disassemble for
// tests and snapshot comparisons.
func DisassembleToString(data []byte) (string, error) {
	var sb strings.Builder
	if err := Disassemble(data, &sb); err != nil {
		return sb.String(), err
	}
	return sb.String(), nil
}
