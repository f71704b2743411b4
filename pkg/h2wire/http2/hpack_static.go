package http2

// HeaderField is a single name/value header pair, the unit the HPACK
// codec and the caller's header list both deal in.
type HeaderField struct {
	Name      string
	Value     string
	Sensitive bool // never indexed; re-encoded as a literal-never-indexed
}

func (f HeaderField) size() int {
	return len(f.Name) + len(f.Value) + 32
}

// staticTable is the fixed 61-entry table of RFC 7541 Appendix A. Index 1
// is staticTable[0]; callers translate between the two.
var staticTable = [61]HeaderField{
	{Name: ":authority"},
	{Name: ":method", Value: "GET"},
	{Name: ":method", Value: "POST"},
	{Name: ":path", Value: "/"},
	{Name: ":path", Value: "/index.html"},
	{Name: ":scheme", Value: "http"},
	{Name: ":scheme", Value: "https"},
	{Name: ":status", Value: "200"},
	{Name: ":status", Value: "204"},
	{Name: ":status", Value: "206"},
	{Name: ":status", Value: "304"},
	{Name: ":status", Value: "400"},
	{Name: ":status", Value: "404"},
	{Name: ":status", Value: "500"},
	{Name: "accept-charset"},
	{Name: "accept-encoding", Value: "gzip, deflate"},
	{Name: "accept-language"},
	{Name: "accept-ranges"},
	{Name: "accept"},
	{Name: "access-control-allow-origin"},
	{Name: "age"},
	{Name: "allow"},
	{Name: "authorization"},
	{Name: "cache-control"},
	{Name: "content-disposition"},
	{Name: "content-encoding"},
	{Name: "content-language"},
	{Name: "content-length"},
	{Name: "content-location"},
	{Name: "content-range"},
	{Name: "content-type"},
	{Name: "cookie"},
	{Name: "date"},
	{Name: "etag"},
	{Name: "expect"},
	{Name: "expires"},
	{Name: "from"},
	{Name: "host"},
	{Name: "if-match"},
	{Name: "if-modified-since"},
	{Name: "if-none-match"},
	{Name: "if-range"},
	{Name: "if-unmodified-since"},
	{Name: "last-modified"},
	{Name: "link"},
	{Name: "location"},
	{Name: "max-forwards"},
	{Name: "proxy-authenticate"},
	{Name: "proxy-authorization"},
	{Name: "range"},
	{Name: "referer"},
	{Name: "refresh"},
	{Name: "retry-after"},
	{Name: "server"},
	{Name: "set-cookie"},
	{Name: "strict-transport-security"},
	{Name: "transfer-encoding"},
	{Name: "user-agent"},
	{Name: "vary"},
	{Name: "via"},
	{Name: "www-authenticate"},
}

// staticNameIndex maps a header name to the lowest static-table index
// (1-based) that carries that name, for the name-only match case.
var staticNameIndex = make(map[string]int, len(staticTable))

// staticPairIndex maps an exact name/value pair to its static-table
// index (1-based).
var staticPairIndex = make(map[HeaderField]int, len(staticTable))

func init() {
	for i, f := range staticTable {
		idx := i + 1
		if _, ok := staticNameIndex[f.Name]; !ok {
			staticNameIndex[f.Name] = idx
		}
		staticPairIndex[f] = idx
	}
}

// FindStaticIndex looks up f in the static table. exact reports whether
// both name and value matched; otherwise, if name matched by itself, idx
// is the first static entry with that name and exact is false. idx is
// zero when neither matched.
func FindStaticIndex(f HeaderField) (idx int, exact bool) {
	if i, ok := staticPairIndex[HeaderField{Name: f.Name, Value: f.Value}]; ok {
		return i, true
	}
	if i, ok := staticNameIndex[f.Name]; ok {
		return i, false
	}
	return 0, false
}
