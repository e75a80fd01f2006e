package linkel

import "github.com/pthm/linkel/lib/encoding"

// Msgpack field keys for snapshot tokens. Single letters keep tokens
// short; the token format is internal to the encoder key that signed it.
const (
	snapURL         = "u"
	snapColorScheme = "c"
	snapIsButton    = "b"
	snapIsExternal  = "e"
	snapLabel       = "l"
)

// EncodeFields implements encoding.Encodable.
func (s State) EncodeFields() map[string]any {
	return map[string]any{
		snapURL:         s.URL,
		snapColorScheme: s.ColorScheme,
		snapIsButton:    s.IsButton,
		snapIsExternal:  s.IsExternal,
		snapLabel:       s.Label,
	}
}

// DecodeFields implements encoding.Decodable. Missing or mistyped fields
// fall back to zero values; a snapshot never fails into a broken render.
func (s *State) DecodeFields(data map[string]any) error {
	if v, ok := data[snapURL].(string); ok {
		s.URL = v
	}
	if v, ok := data[snapColorScheme].(string); ok {
		s.ColorScheme = v
	}
	if v, ok := data[snapIsButton].(bool); ok {
		s.IsButton = v
	}
	if v, ok := data[snapIsExternal].(bool); ok {
		s.IsExternal = v
	}
	if v, ok := data[snapLabel].(string); ok {
		s.Label = v
	}
	return nil
}

// Snapshot encodes the current canonical state as a token: signed (HMAC,
// visible but tamper-proof) by default, encrypted (AES-GCM, opaque) when
// sensitive is true.
func (l *Link) Snapshot(enc *encoding.Encoder, sensitive bool) (string, error) {
	return enc.Encode(l.state, sensitive)
}

// RestoreSnapshot decodes a token and applies the carried configuration.
// The restore funnels through the change queue like any other write
// channel, so it renders once and obeys the same fixpoint rules.
func (l *Link) RestoreSnapshot(enc *encoding.Encoder, token string, sensitive bool) error {
	if !l.mounted {
		return ErrNotMounted
	}
	var st State
	if err := enc.Decode(token, sensitive, &st); err != nil {
		return err
	}
	l.push(change{f: fieldURL, s: st.URL})
	l.push(change{f: fieldColorScheme, s: st.ColorScheme})
	l.push(change{f: fieldIsButton, b: st.IsButton})
	l.push(change{f: fieldIsExternal, b: st.IsExternal})
	l.push(change{f: fieldLabel, s: st.Label})
	l.drain()
	return nil
}
