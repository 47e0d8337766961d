package blocks

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Blocks is an ordered block sequence that knows how to round-trip the tagged
// union through JSON. Marshalling injects the type tag; unmarshalling
// dispatches on it. Unknown variants are preserved as a decode failure only
// when strict decoding is requested; Decode and FromMap stay lenient so
// half-finished editor payloads survive a render pass.
type Blocks []Block

// Clone returns a copy whose backing storage is independent of the receiver.
// Every variant is a value type except List, whose item slice is re-sliced.
func (b Blocks) Clone() Blocks {
	if b == nil {
		return nil
	}
	out := make(Blocks, len(b))
	for i, block := range b {
		if list, ok := block.(List); ok {
			list.Items = append([]string(nil), list.Items...)
			block = list
		}
		out[i] = block
	}
	return out
}

// MarshalJSON encodes every block as an envelope carrying its type tag.
func (b Blocks) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(b))
	for _, block := range b {
		encoded, err := MarshalBlock(block)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a block array, dropping entries whose type tag is
// unknown or whose payload cannot be decoded. Validation, not decoding, is
// where malformed blocks are rejected.
func (b *Blocks) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	decoded := make(Blocks, 0, len(raws))
	for _, raw := range raws {
		block, ok := Decode(raw)
		if !ok {
			continue
		}
		decoded = append(decoded, block)
	}
	*b = decoded
	return nil
}

// MarshalBlock encodes a single block with its type tag injected.
func MarshalBlock(block Block) ([]byte, error) {
	if block == nil {
		return nil, fmt.Errorf("blocks: cannot marshal nil block")
	}
	encoded, err := json.Marshal(block)
	if err != nil {
		return nil, err
	}
	envelope := map[string]json.RawMessage{}
	if err := json.Unmarshal(encoded, &envelope); err != nil {
		return nil, err
	}
	tag, err := json.Marshal(block.BlockType())
	if err != nil {
		return nil, err
	}
	envelope["type"] = tag
	return json.Marshal(envelope)
}

// Decode turns a raw JSON block payload into its typed variant. The second
// return is false for unknown tags or undecodable payloads; callers decide
// whether that is a skip (renderer) or an error (validator).
func Decode(raw json.RawMessage) (Block, bool) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	return decodeTyped(strings.TrimSpace(envelope.Type), raw)
}

// FromMap decodes an already-parsed JSON object. Editor previews hand the
// renderer maps rather than raw bytes, so both entry points exist.
func FromMap(raw map[string]any) (Block, bool) {
	if raw == nil {
		return nil, false
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, false
	}
	return Decode(encoded)
}

func decodeTyped(tag string, raw json.RawMessage) (Block, bool) {
	switch tag {
	case TypeHeading:
		var block Heading
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeParagraph:
		var block Paragraph
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeImage:
		var block Image
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeVideo:
		var block Video
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeLink:
		var block Link
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeList:
		var block List
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeQuote:
		var block Quote
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeDivider:
		return Divider{}, true
	case TypeButton:
		var block Button
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeIconFeature:
		var block IconFeature
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	case TypeEmbed:
		var block Embed
		if err := json.Unmarshal(raw, &block); err != nil {
			return nil, false
		}
		return block, true
	default:
		return nil, false
	}
}

// UnmarshalJSON coerces level from a number or a numeric string. Editing UIs
// submit either shape.
func (h *Heading) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Level json.RawMessage `json:"level"`
		Text  LocalizedText   `json:"text"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	h.Text = envelope.Text
	level, ok := coerceLevel(envelope.Level)
	if !ok {
		// Leave zero; the validator reports the range violation.
		h.Level = 0
		return nil
	}
	h.Level = level
	return nil
}

func coerceLevel(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		if value, err := number.Int64(); err == nil {
			return int(value), true
		}
		return 0, false
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if value, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			return value, true
		}
	}
	return 0, false
}
