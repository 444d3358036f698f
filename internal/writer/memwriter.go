package writer

import "bytes"

// MemWriter captures a serialized document in memory. Dry runs and diffs
// use it in place of a FileWriter.
type MemWriter struct {
	Buf []byte
}

var _ Sink = (*MemWriter)(nil)

// WriteDocument stores the encoder output, replacing any previous content.
func (w *MemWriter) WriteDocument(encode EncodeFunc) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	w.Buf = append(w.Buf[:0], buf.Bytes()...)
	return nil
}
