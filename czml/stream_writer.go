package czml

// StreamWriter opens the packets of a document. It reuses one PacketWriter,
// so a packet must be closed before the next is opened.
type StreamWriter struct {
	packet *PacketWriter
}

// NewStreamWriter returns a StreamWriter.
func NewStreamWriter() *StreamWriter {
	return &StreamWriter{}
}

// OpenPacket writes the start of a packet to out and returns its writer.
func (s *StreamWriter) OpenPacket(out *OutputStream) *PacketWriter {
	if s.packet == nil {
		s.packet = NewPacketWriter()
	}
	s.packet.Open(out)
	return s.packet
}

// Document writes a complete document: the enclosing sequence plus the
// packets written by fn. An error from fn is returned after the sequence is
// closed; otherwise the stream's error, if any.
func (s *StreamWriter) Document(out *OutputStream, fn func(open func() *PacketWriter) error) error {
	out.WriteStartSequence()
	err := fn(func() *PacketWriter { return s.OpenPacket(out) })
	out.WriteEndSequence()
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}
