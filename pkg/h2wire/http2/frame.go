package http2

import (
	"encoding/binary"
	"fmt"
)

// FrameType identifies one of the ten HTTP/2 frame types (RFC 7540
// Section 4.1).
type FrameType uint8

const (
	FrameData         FrameType = 0x0
	FrameHeaders      FrameType = 0x1
	FramePriority     FrameType = 0x2
	FrameRSTStream    FrameType = 0x3
	FrameSettings     FrameType = 0x4
	FramePushPromise  FrameType = 0x5
	FramePing         FrameType = 0x6
	FrameGoAway       FrameType = 0x7
	FrameWindowUpdate FrameType = 0x8
	FrameContinuation FrameType = 0x9
)

func (t FrameType) String() string {
	switch t {
	case FrameData:
		return "DATA"
	case FrameHeaders:
		return "HEADERS"
	case FramePriority:
		return "PRIORITY"
	case FrameRSTStream:
		return "RST_STREAM"
	case FrameSettings:
		return "SETTINGS"
	case FramePushPromise:
		return "PUSH_PROMISE"
	case FramePing:
		return "PING"
	case FrameGoAway:
		return "GOAWAY"
	case FrameWindowUpdate:
		return "WINDOW_UPDATE"
	case FrameContinuation:
		return "CONTINUATION"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}

// Flags holds the per-frame flag byte (RFC 7540 Section 4.1). The bit
// meanings are frame-type-specific; callers interpret them with the
// Has helper alongside the Flag* constants for the frame type at hand.
type Flags uint8

const (
	FlagDataEndStream Flags = 0x1
	FlagDataPadded    Flags = 0x8

	FlagHeadersEndStream  Flags = 0x1
	FlagHeadersEndHeaders Flags = 0x4
	FlagHeadersPadded     Flags = 0x8
	FlagHeadersPriority   Flags = 0x20

	FlagSettingsAck Flags = 0x1

	FlagPingAck Flags = 0x1

	FlagContinuationEndHeaders Flags = 0x4

	FlagPushPromiseEndHeaders Flags = 0x4
	FlagPushPromisePadded     Flags = 0x8
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// FrameHeader is the fixed 9-byte header every frame carries (RFC 7540
// Section 4.1):
//
//	+-----------------------------------------------+
//	|                 Length (24)                   |
//	+---------------+---------------+---------------+
//	|   Type (8)    |   Flags (8)   |
//	+-+-------------+---------------+-------------------------------+
//	|R|                 Stream Identifier (31)                      |
//	+=+=============================================================+
type FrameHeader struct {
	Length   uint32
	Type     FrameType
	Flags    Flags
	StreamID uint32
}

// ParseFrameHeader decodes a 9-byte frame header.
func ParseFrameHeader(b [9]byte) FrameHeader {
	return FrameHeader{
		Length:   uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		Type:     FrameType(b[3]),
		Flags:    Flags(b[4]),
		StreamID: binary.BigEndian.Uint32(b[5:9]) & 0x7fffffff,
	}
}

// WriteFrameHeader writes fh to the first 9 bytes of b and returns 9.
// b must be at least 9 bytes long.
func WriteFrameHeader(b []byte, fh FrameHeader) int {
	if len(b) < FrameHeaderLen {
		panic("http2: buffer too small for frame header")
	}

	b[0] = byte(fh.Length >> 16)
	b[1] = byte(fh.Length >> 8)
	b[2] = byte(fh.Length)
	b[3] = byte(fh.Type)
	b[4] = byte(fh.Flags)
	binary.BigEndian.PutUint32(b[5:9], fh.StreamID&0x7fffffff)

	return FrameHeaderLen
}

// Validate checks fh against the per-type structural constraints of RFC
// 7540 Section 6. It does not interpret the payload; ParseXFrame does
// the payload-dependent checks (such as padding length vs. frame
// length) that require the bytes themselves.
func (fh *FrameHeader) Validate() error {
	if fh.Length > MaxFrameSize {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrFrameTooLarge}
	}

	switch fh.Type {
	case FrameData:
		return fh.validateData()
	case FrameHeaders:
		return fh.validateHeaders()
	case FramePriority:
		return fh.validatePriority()
	case FrameRSTStream:
		return fh.validateRSTStream()
	case FrameSettings:
		return fh.validateSettings()
	case FramePushPromise:
		return fh.validatePushPromise()
	case FramePing:
		return fh.validatePing()
	case FrameGoAway:
		return fh.validateGoAway()
	case FrameWindowUpdate:
		return fh.validateWindowUpdate()
	case FrameContinuation:
		return fh.validateContinuation()
	default:
		// Unknown frame types are ignored, not rejected (RFC 7540
		// Section 4.1); the caller decides via UnknownFrameTypeError.
		return nil
	}
}

func (fh *FrameHeader) validateData() error {
	if fh.StreamID == 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	return nil
}

func (fh *FrameHeader) validateHeaders() error {
	if fh.StreamID == 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	return nil
}

func (fh *FrameHeader) validatePriority() error {
	if fh.StreamID == 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	if fh.Length != 5 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return nil
}

func (fh *FrameHeader) validateRSTStream() error {
	if fh.StreamID == 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	if fh.Length != 4 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return nil
}

func (fh *FrameHeader) validateSettings() error {
	if fh.StreamID != 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	if fh.Length%6 != 0 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	if fh.Flags.Has(FlagSettingsAck) && fh.Length != 0 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrSettingsAckWithLength}
	}
	return nil
}

func (fh *FrameHeader) validatePushPromise() error {
	if fh.StreamID == 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	if fh.Length < 4 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return nil
}

func (fh *FrameHeader) validatePing() error {
	if fh.StreamID != 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	if fh.Length != 8 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return nil
}

func (fh *FrameHeader) validateGoAway() error {
	if fh.StreamID != 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	if fh.Length < 8 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return nil
}

func (fh *FrameHeader) validateWindowUpdate() error {
	if fh.Length != 4 {
		return ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return nil
}

func (fh *FrameHeader) validateContinuation() error {
	if fh.StreamID == 0 {
		return ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}
	return nil
}

// Frame is implemented by every concrete frame type.
type Frame interface {
	Header() FrameHeader
	Type() FrameType
	StreamID() uint32
}

// DataFrame is a DATA frame (RFC 7540 Section 6.1).
type DataFrame struct {
	FrameHeader
	Data      []byte
	PadLength uint8
}

func (f *DataFrame) Header() FrameHeader { return f.FrameHeader }
func (f *DataFrame) Type() FrameType     { return FrameData }
func (f *DataFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

func (f *DataFrame) EndStream() bool { return f.Flags.Has(FlagDataEndStream) }
func (f *DataFrame) Padded() bool    { return f.Flags.Has(FlagDataPadded) }

// ParseDataFrame parses payload into a DataFrame. Data aliases payload;
// the caller must not mutate payload afterward if it retains the frame.
func ParseDataFrame(fh FrameHeader, payload []byte) (*DataFrame, error) {
	df := &DataFrame{FrameHeader: fh}

	offset := 0
	if fh.Flags.Has(FlagDataPadded) {
		if len(payload) < 1 {
			return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPadding}
		}
		df.PadLength = payload[0]
		offset = 1
	}

	dataLen := len(payload) - offset - int(df.PadLength)
	if dataLen < 0 {
		return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPadding}
	}

	df.Data = payload[offset : offset+dataLen]
	return df, nil
}

// EncodeDataFrame builds the wire payload for a DATA frame. Pass
// padLength 0 to omit the PADDED flag's length byte entirely; the
// caller is responsible for setting FlagDataPadded on the frame header
// it writes whenever padLength is nonzero.
func EncodeDataFrame(data []byte, padLength uint8) []byte {
	if padLength == 0 {
		return data
	}
	buf := make([]byte, 0, 1+len(data)+int(padLength))
	buf = append(buf, padLength)
	buf = append(buf, data...)
	buf = append(buf, make([]byte, padLength)...)
	return buf
}

// HeadersFrame is a HEADERS frame (RFC 7540 Section 6.2).
type HeadersFrame struct {
	FrameHeader
	PadLength        uint8
	StreamDependency uint32
	Weight           uint8
	Exclusive        bool
	HeaderBlock      []byte
}

func (f *HeadersFrame) Header() FrameHeader { return f.FrameHeader }
func (f *HeadersFrame) Type() FrameType     { return FrameHeaders }
func (f *HeadersFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

func (f *HeadersFrame) EndStream() bool  { return f.Flags.Has(FlagHeadersEndStream) }
func (f *HeadersFrame) EndHeaders() bool { return f.Flags.Has(FlagHeadersEndHeaders) }
func (f *HeadersFrame) HasPriority() bool {
	return f.Flags.Has(FlagHeadersPriority)
}

// ParseHeadersFrame parses payload into a HeadersFrame.
func ParseHeadersFrame(fh FrameHeader, payload []byte) (*HeadersFrame, error) {
	hf := &HeadersFrame{FrameHeader: fh}

	offset := 0
	if fh.Flags.Has(FlagHeadersPadded) {
		if len(payload) < 1 {
			return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPadding}
		}
		hf.PadLength = payload[0]
		offset = 1
	}

	if fh.Flags.Has(FlagHeadersPriority) {
		if len(payload) < offset+5 {
			return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPriority}
		}
		streamDep := binary.BigEndian.Uint32(payload[offset : offset+4])
		hf.Exclusive = streamDep>>31 == 1
		hf.StreamDependency = streamDep & 0x7fffffff
		hf.Weight = payload[offset+4]
		offset += 5
	}

	headerBlockLen := len(payload) - offset - int(hf.PadLength)
	if headerBlockLen < 0 {
		return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPadding}
	}

	hf.HeaderBlock = payload[offset : offset+headerBlockLen]
	return hf, nil
}

// EncodeHeadersFrame builds the wire payload for a HEADERS frame. Pass
// hasPriority false to omit the priority fields entirely.
func EncodeHeadersFrame(headerBlock []byte, padLength uint8, hasPriority bool, streamDep uint32, weight uint8, exclusive bool) []byte {
	size := len(headerBlock)
	if padLength > 0 {
		size += 1 + int(padLength)
	}
	if hasPriority {
		size += 5
	}

	buf := make([]byte, 0, size)
	if padLength > 0 {
		buf = append(buf, padLength)
	}
	if hasPriority {
		dep := streamDep & 0x7fffffff
		if exclusive {
			dep |= streamIDReservedBit
		}
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], dep)
		buf = append(buf, tmp[:]...)
		buf = append(buf, weight)
	}
	buf = append(buf, headerBlock...)
	if padLength > 0 {
		buf = append(buf, make([]byte, padLength)...)
	}
	return buf
}

// PriorityFrame is a PRIORITY frame (RFC 7540 Section 6.3).
type PriorityFrame struct {
	FrameHeader
	StreamDependency uint32
	Weight           uint8
	Exclusive        bool
}

func (f *PriorityFrame) Header() FrameHeader { return f.FrameHeader }
func (f *PriorityFrame) Type() FrameType     { return FramePriority }
func (f *PriorityFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParsePriorityFrame parses payload into a PriorityFrame.
func ParsePriorityFrame(fh FrameHeader, payload []byte) (*PriorityFrame, error) {
	if len(payload) != 5 {
		return nil, ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}

	streamDep := binary.BigEndian.Uint32(payload[0:4])
	return &PriorityFrame{
		FrameHeader:      fh,
		Exclusive:        streamDep>>31 == 1,
		StreamDependency: streamDep & 0x7fffffff,
		Weight:           payload[4],
	}, nil
}

// EncodePriorityFrame builds the wire payload for a PRIORITY frame.
func EncodePriorityFrame(streamDep uint32, weight uint8, exclusive bool) []byte {
	dep := streamDep & 0x7fffffff
	if exclusive {
		dep |= streamIDReservedBit
	}
	buf := make([]byte, 5)
	binary.BigEndian.PutUint32(buf[0:4], dep)
	buf[4] = weight
	return buf
}

// RSTStreamFrame is an RST_STREAM frame (RFC 7540 Section 6.4).
type RSTStreamFrame struct {
	FrameHeader
	ErrorCode ErrorCode
}

func (f *RSTStreamFrame) Header() FrameHeader { return f.FrameHeader }
func (f *RSTStreamFrame) Type() FrameType     { return FrameRSTStream }
func (f *RSTStreamFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParseRSTStreamFrame parses payload into an RSTStreamFrame.
func ParseRSTStreamFrame(fh FrameHeader, payload []byte) (*RSTStreamFrame, error) {
	if len(payload) != 4 {
		return nil, ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	return &RSTStreamFrame{
		FrameHeader: fh,
		ErrorCode:   ErrorCode(binary.BigEndian.Uint32(payload[0:4])),
	}, nil
}

// EncodeRSTStreamFrame builds the wire payload for an RST_STREAM frame.
func EncodeRSTStreamFrame(code ErrorCode) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(code))
	return buf
}

// Setting is a single SETTINGS parameter (RFC 7540 Section 6.5.1).
type Setting struct {
	ID    SettingID
	Value uint32
}

// SettingsFrame is a SETTINGS frame (RFC 7540 Section 6.5).
type SettingsFrame struct {
	FrameHeader
	Settings []Setting
}

func (f *SettingsFrame) Header() FrameHeader { return f.FrameHeader }
func (f *SettingsFrame) Type() FrameType     { return FrameSettings }
func (f *SettingsFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

func (f *SettingsFrame) IsAck() bool { return f.Flags.Has(FlagSettingsAck) }

// ParseSettingsFrame parses payload into a SettingsFrame.
func ParseSettingsFrame(fh FrameHeader, payload []byte) (*SettingsFrame, error) {
	sf := &SettingsFrame{FrameHeader: fh}

	if fh.Flags.Has(FlagSettingsAck) {
		return sf, nil
	}

	n := len(payload) / 6
	if n > 0 {
		sf.Settings = make([]Setting, n)
		for i := 0; i < n; i++ {
			off := i * 6
			s := Setting{
				ID:    SettingID(binary.BigEndian.Uint16(payload[off : off+2])),
				Value: binary.BigEndian.Uint32(payload[off+2 : off+6]),
			}
			switch s.ID {
			case SettingInitialWindowSize:
				if s.Value > MaxWindowSize {
					return nil, ProtocolError{Code: ErrCodeFlowControl, Err: ErrInvalidSettings}
				}
			case SettingMaxFrameSize:
				if s.Value > MaxFrameSize {
					return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidSettings}
				}
			}
			sf.Settings[i] = s
		}
	}
	return sf, nil
}

// EncodeSettingsFrame builds the wire payload for a non-ACK SETTINGS
// frame. An ACK frame's payload is always empty.
func EncodeSettingsFrame(settings []Setting) []byte {
	buf := make([]byte, 0, len(settings)*6)
	for _, s := range settings {
		var tmp [6]byte
		binary.BigEndian.PutUint16(tmp[0:2], uint16(s.ID))
		binary.BigEndian.PutUint32(tmp[2:6], s.Value)
		buf = append(buf, tmp[:]...)
	}
	return buf
}

// PushPromiseFrame is a PUSH_PROMISE frame (RFC 7540 Section 6.6).
type PushPromiseFrame struct {
	FrameHeader
	PadLength        uint8
	PromisedStreamID uint32
	HeaderBlock      []byte
}

func (f *PushPromiseFrame) Header() FrameHeader { return f.FrameHeader }
func (f *PushPromiseFrame) Type() FrameType     { return FramePushPromise }
func (f *PushPromiseFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

func (f *PushPromiseFrame) EndHeaders() bool {
	return f.Flags.Has(FlagPushPromiseEndHeaders)
}

// ParsePushPromiseFrame parses payload into a PushPromiseFrame.
func ParsePushPromiseFrame(fh FrameHeader, payload []byte) (*PushPromiseFrame, error) {
	ppf := &PushPromiseFrame{FrameHeader: fh}

	offset := 0
	if fh.Flags.Has(FlagPushPromisePadded) {
		if len(payload) < 1 {
			return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPadding}
		}
		ppf.PadLength = payload[0]
		offset = 1
	}

	if len(payload) < offset+4 {
		return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
	}
	ppf.PromisedStreamID = binary.BigEndian.Uint32(payload[offset:offset+4]) & 0x7fffffff
	offset += 4

	if ppf.PromisedStreamID == 0 || ppf.PromisedStreamID <= fh.StreamID {
		return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidStreamID}
	}

	headerBlockLen := len(payload) - offset - int(ppf.PadLength)
	if headerBlockLen < 0 {
		return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidPadding}
	}

	ppf.HeaderBlock = payload[offset : offset+headerBlockLen]
	return ppf, nil
}

// EncodePushPromiseFrame builds the wire payload for a PUSH_PROMISE
// frame.
func EncodePushPromiseFrame(promisedStreamID uint32, headerBlock []byte, padLength uint8) []byte {
	size := 4 + len(headerBlock)
	if padLength > 0 {
		size += 1 + int(padLength)
	}
	buf := make([]byte, 0, size)
	if padLength > 0 {
		buf = append(buf, padLength)
	}
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], promisedStreamID&0x7fffffff)
	buf = append(buf, tmp[:]...)
	buf = append(buf, headerBlock...)
	if padLength > 0 {
		buf = append(buf, make([]byte, padLength)...)
	}
	return buf
}

// PingFrame is a PING frame (RFC 7540 Section 6.7).
type PingFrame struct {
	FrameHeader
	Data [8]byte
}

func (f *PingFrame) Header() FrameHeader { return f.FrameHeader }
func (f *PingFrame) Type() FrameType     { return FramePing }
func (f *PingFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

func (f *PingFrame) IsAck() bool { return f.Flags.Has(FlagPingAck) }

// ParsePingFrame parses payload into a PingFrame.
func ParsePingFrame(fh FrameHeader, payload []byte) (*PingFrame, error) {
	if len(payload) != 8 {
		return nil, ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}
	pf := &PingFrame{FrameHeader: fh}
	copy(pf.Data[:], payload)
	return pf, nil
}

// EncodePingFrame builds the wire payload for a PING frame.
func EncodePingFrame(data [8]byte) []byte {
	buf := make([]byte, 8)
	copy(buf, data[:])
	return buf
}

// GoAwayFrame is a GOAWAY frame (RFC 7540 Section 6.8).
type GoAwayFrame struct {
	FrameHeader
	LastStreamID uint32
	ErrorCode    ErrorCode
	DebugData    []byte
}

func (f *GoAwayFrame) Header() FrameHeader { return f.FrameHeader }
func (f *GoAwayFrame) Type() FrameType     { return FrameGoAway }
func (f *GoAwayFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParseGoAwayFrame parses payload into a GoAwayFrame.
func ParseGoAwayFrame(fh FrameHeader, payload []byte) (*GoAwayFrame, error) {
	if len(payload) < 8 {
		return nil, ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}

	gaf := &GoAwayFrame{
		FrameHeader:  fh,
		LastStreamID: binary.BigEndian.Uint32(payload[0:4]) & 0x7fffffff,
		ErrorCode:    ErrorCode(binary.BigEndian.Uint32(payload[4:8])),
	}
	if len(payload) > 8 {
		gaf.DebugData = payload[8:]
	}
	return gaf, nil
}

// EncodeGoAwayFrame builds the wire payload for a GOAWAY frame.
func EncodeGoAwayFrame(lastStreamID uint32, code ErrorCode, debugData []byte) []byte {
	buf := make([]byte, 8, 8+len(debugData))
	binary.BigEndian.PutUint32(buf[0:4], lastStreamID&0x7fffffff)
	binary.BigEndian.PutUint32(buf[4:8], uint32(code))
	return append(buf, debugData...)
}

// WindowUpdateFrame is a WINDOW_UPDATE frame (RFC 7540 Section 6.9).
type WindowUpdateFrame struct {
	FrameHeader
	WindowSizeIncrement uint32
}

func (f *WindowUpdateFrame) Header() FrameHeader { return f.FrameHeader }
func (f *WindowUpdateFrame) Type() FrameType     { return FrameWindowUpdate }
func (f *WindowUpdateFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParseWindowUpdateFrame parses payload into a WindowUpdateFrame. A
// zero increment is a StreamError when StreamID is nonzero and a
// ProtocolError on the connection stream, per RFC 7540 Section 6.9.
func ParseWindowUpdateFrame(fh FrameHeader, payload []byte) (*WindowUpdateFrame, error) {
	if len(payload) != 4 {
		return nil, ProtocolError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
	}

	wuf := &WindowUpdateFrame{
		FrameHeader:         fh,
		WindowSizeIncrement: binary.BigEndian.Uint32(payload[0:4]) & 0x7fffffff,
	}

	if wuf.WindowSizeIncrement == 0 {
		if fh.StreamID == 0 {
			return nil, ProtocolError{Code: ErrCodeProtocol, Err: ErrInvalidWindowUpdate}
		}
		return nil, StreamError{StreamID: fh.StreamID, Code: ErrCodeProtocol, Err: ErrInvalidWindowUpdate}
	}

	return wuf, nil
}

// EncodeWindowUpdateFrame builds the wire payload for a WINDOW_UPDATE
// frame.
func EncodeWindowUpdateFrame(increment uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, increment&0x7fffffff)
	return buf
}

// ContinuationFrame is a CONTINUATION frame (RFC 7540 Section 6.10).
type ContinuationFrame struct {
	FrameHeader
	HeaderBlock []byte
}

func (f *ContinuationFrame) Header() FrameHeader { return f.FrameHeader }
func (f *ContinuationFrame) Type() FrameType     { return FrameContinuation }
func (f *ContinuationFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

func (f *ContinuationFrame) EndHeaders() bool {
	return f.Flags.Has(FlagContinuationEndHeaders)
}

// ParseContinuationFrame parses payload into a ContinuationFrame.
func ParseContinuationFrame(fh FrameHeader, payload []byte) (*ContinuationFrame, error) {
	return &ContinuationFrame{FrameHeader: fh, HeaderBlock: payload}, nil
}

// EncodeContinuationFrame builds the wire payload for a CONTINUATION
// frame: the header block fragment itself, unchanged.
func EncodeContinuationFrame(headerBlock []byte) []byte {
	return headerBlock
}
