package http2

import (
	"go.uber.org/zap"
)

// streamCodec is the HPACK encoder/decoder pair FrameCodec keeps for a
// single stream ID. The two travel together because a stream's HEADERS
// and CONTINUATION frames must run through the same dynamic table state
// from one call to the next.
type streamCodec struct {
	enc      *Encoder
	dec      *Decoder
	lastUsed uint64
}

// FrameCodec serializes and parses HTTP/2 frames and drives a bounded
// cache of per-stream HPACK codecs. RFC 7541 defines exactly one HPACK
// encoder state and one decoder state per connection; keeping a
// separate pair per stream, as this cache does, does not track real
// HTTP/2 semantics (see the design note in DESIGN.md) but is what the
// stream codec cache in the data model calls for, so it is implemented
// faithfully here. Prefer EncodeHeaderBlock/DecodeHeaderBlock with
// ConnectionStreamID for RFC-conformant behavior.
type FrameCodec struct {
	cfg     CodecConfig
	streams map[uint32]*streamCodec
	logger  *zap.Logger
	seq     uint64
}

// NewFrameCodec returns a FrameCodec configured by cfg, with its two
// permanent sentinel stream entries (the connection stream, 0, and the
// maximum stream ID, 2^31-1) already populated.
func NewFrameCodec(cfg CodecConfig) *FrameCodec {
	fc := &FrameCodec{
		cfg:     cfg,
		streams: make(map[uint32]*streamCodec),
		logger:  zap.NewNop(),
	}
	fc.streams[ConnectionStreamID] = fc.newStreamCodec()
	fc.streams[MaxStreamID] = fc.newStreamCodec()
	return fc
}

// WithLogger attaches a logger for stream-cache eviction and
// rejected-frame diagnostics, returning fc for chaining.
func (fc *FrameCodec) WithLogger(l *zap.Logger) *FrameCodec {
	if l == nil {
		l = zap.NewNop()
	}
	fc.logger = l
	return fc
}

func (fc *FrameCodec) newStreamCodec() *streamCodec {
	return &streamCodec{
		enc: NewEncoder(fc.cfg.MaxDynamicTableSize),
		dec: NewDecoderWithConfig(fc.cfg),
	}
}

func (fc *FrameCodec) nextSeq() uint64 {
	fc.seq++
	return fc.seq
}

// streamCodecFor returns the cached codec pair for streamID, creating
// one (and evicting the lowest-numbered non-sentinel entry if the cache
// is full) on first use.
func (fc *FrameCodec) streamCodecFor(streamID uint32) *streamCodec {
	if sc, ok := fc.streams[streamID]; ok {
		sc.lastUsed = fc.nextSeq()
		return sc
	}

	nonSentinelCount := len(fc.streams) - 2
	if nonSentinelCount >= fc.cfg.MaxStreamCacheSize {
		fc.evictOne(streamID)
	}

	sc := fc.newStreamCodec()
	sc.lastUsed = fc.nextSeq()
	fc.streams[streamID] = sc
	return sc
}

// evictOne removes the lowest-numbered cached stream other than the two
// sentinels and excludeID, logging the eviction.
func (fc *FrameCodec) evictOne(excludeID uint32) {
	victim := uint32(0)
	found := false
	for id := range fc.streams {
		if id == ConnectionStreamID || id == MaxStreamID || id == excludeID {
			continue
		}
		if !found || id < victim {
			victim = id
			found = true
		}
	}
	if !found {
		return
	}
	delete(fc.streams, victim)
	fc.logger.Debug("evicting stream hpack codec", zap.Uint32("stream_id", victim))
}

// CloseStream removes streamID's cached HPACK codec pair, if any. The
// two sentinel streams are never evicted by this call.
func (fc *FrameCodec) CloseStream(streamID uint32) {
	if streamID == ConnectionStreamID || streamID == MaxStreamID {
		return
	}
	delete(fc.streams, streamID)
}

// RequireStream reports NoSuchStreamError if streamID has no cached
// HPACK codec pair right now: either no EncodeHeaderBlock/
// DecodeHeaderBlock call has used it yet, or its pair has since been
// evicted or removed by CloseStream. Callers that want a
// reference to an evicted or never-seen stream treated as fatal, rather
// than silently opening a fresh codec pair for it, check this first.
func (fc *FrameCodec) RequireStream(streamID uint32) error {
	if _, ok := fc.streams[streamID]; !ok {
		return NoSuchStreamError{StreamID: streamID}
	}
	return nil
}

// EncodeHeaderBlock HPACK-encodes fields using streamID's cached
// encoder state.
func (fc *FrameCodec) EncodeHeaderBlock(streamID uint32, fields []HeaderField) []byte {
	return fc.streamCodecFor(streamID).enc.EncodeHeaderBlock(fields)
}

// DecodeHeaderBlock HPACK-decodes block using streamID's cached decoder
// state.
func (fc *FrameCodec) DecodeHeaderBlock(streamID uint32, block []byte) ([]HeaderField, error) {
	fields, err := fc.streamCodecFor(streamID).dec.DecodeHeaderBlock(block)
	if err != nil {
		fc.logger.Warn("rejected header block", zap.Uint32("stream_id", streamID), zap.Error(err))
	}
	return fields, err
}

// EncodeFrame serializes f, header and payload together, into a single
// wire buffer.
func (fc *FrameCodec) EncodeFrame(f Frame) []byte {
	fh := f.Header()
	payload := fc.encodePayload(f)
	fh.Length = uint32(len(payload))

	buf := make([]byte, FrameHeaderLen+len(payload))
	WriteFrameHeader(buf, fh)
	copy(buf[FrameHeaderLen:], payload)
	return buf
}

func (fc *FrameCodec) encodePayload(f Frame) []byte {
	switch v := f.(type) {
	case *DataFrame:
		return EncodeDataFrame(v.Data, v.PadLength)
	case *HeadersFrame:
		return EncodeHeadersFrame(v.HeaderBlock, v.PadLength, v.HasPriority(), v.StreamDependency, v.Weight, v.Exclusive)
	case *PriorityFrame:
		return EncodePriorityFrame(v.StreamDependency, v.Weight, v.Exclusive)
	case *RSTStreamFrame:
		return EncodeRSTStreamFrame(v.ErrorCode)
	case *SettingsFrame:
		if v.IsAck() {
			return nil
		}
		return EncodeSettingsFrame(v.Settings)
	case *PushPromiseFrame:
		return EncodePushPromiseFrame(v.PromisedStreamID, v.HeaderBlock, v.PadLength)
	case *PingFrame:
		return EncodePingFrame(v.Data)
	case *GoAwayFrame:
		return EncodeGoAwayFrame(v.LastStreamID, v.ErrorCode, v.DebugData)
	case *WindowUpdateFrame:
		return EncodeWindowUpdateFrame(v.WindowSizeIncrement)
	case *ContinuationFrame:
		return EncodeContinuationFrame(v.HeaderBlock)
	default:
		panic("http2: unsupported frame type in EncodeFrame")
	}
}

// DecodeFrame validates header and parses payload into the concrete
// frame type header.Type names. It returns UnknownFrameTypeError for a
// type outside the ten RFC 7540 frame types rather than failing, so
// callers can choose to skip unknown frames per RFC 7540 Section 4.1.
func (fc *FrameCodec) DecodeFrame(header FrameHeader, payload []byte) (Frame, error) {
	if err := header.Validate(); err != nil {
		fc.logger.Warn("rejected frame header",
			zap.String("type", header.Type.String()),
			zap.Uint32("stream_id", header.StreamID),
			zap.Error(err))
		return nil, err
	}

	if uint32(len(payload)) != header.Length {
		return nil, IncompleteError{Need: int(header.Length) - len(payload)}
	}

	var (
		f   Frame
		err error
	)

	switch header.Type {
	case FrameData:
		f, err = ParseDataFrame(header, payload)
	case FrameHeaders:
		f, err = ParseHeadersFrame(header, payload)
	case FramePriority:
		f, err = ParsePriorityFrame(header, payload)
	case FrameRSTStream:
		f, err = ParseRSTStreamFrame(header, payload)
	case FrameSettings:
		f, err = ParseSettingsFrame(header, payload)
	case FramePushPromise:
		f, err = ParsePushPromiseFrame(header, payload)
	case FramePing:
		f, err = ParsePingFrame(header, payload)
	case FrameGoAway:
		f, err = ParseGoAwayFrame(header, payload)
	case FrameWindowUpdate:
		f, err = ParseWindowUpdateFrame(header, payload)
	case FrameContinuation:
		f, err = ParseContinuationFrame(header, payload)
	default:
		return nil, UnknownFrameTypeError{Type: header.Type}
	}

	if err != nil {
		fc.logger.Warn("rejected frame payload",
			zap.String("type", header.Type.String()),
			zap.Uint32("stream_id", header.StreamID),
			zap.Error(err))
		return nil, err
	}
	return f, nil
}
