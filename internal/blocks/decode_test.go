package blocks

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeHeadingCoercesStringLevel(t *testing.T) {
	raw := json.RawMessage(`{"type":"heading","level":"3","text":"Hello"}`)
	block, ok := Decode(raw)
	if !ok {
		t.Fatalf("expected heading to decode")
	}
	heading, ok := block.(Heading)
	if !ok {
		t.Fatalf("expected Heading, got %T", block)
	}
	if heading.Level != 3 {
		t.Fatalf("expected level 3, got %d", heading.Level)
	}
	if heading.Text.EN != "Hello" || heading.Text.AR != "Hello" {
		t.Fatalf("expected plain string to fill both locales, got %+v", heading.Text)
	}
}

func TestDecodeHeadingLeavesBadLevelForValidator(t *testing.T) {
	raw := json.RawMessage(`{"type":"heading","level":"two","text":"Hello"}`)
	block, ok := Decode(raw)
	if !ok {
		t.Fatalf("expected heading to decode")
	}
	if block.(Heading).Level != 0 {
		t.Fatalf("expected zero level, got %d", block.(Heading).Level)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	raw := json.RawMessage(`{"type":"paragraph","text":{"en":"hi","ar":"مرحبا"},"draftNote":"keep"}`)
	block, ok := Decode(raw)
	if !ok {
		t.Fatalf("expected paragraph to decode")
	}
	paragraph := block.(Paragraph)
	if paragraph.Text.AR != "مرحبا" {
		t.Fatalf("expected per-locale text, got %+v", paragraph.Text)
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	if _, ok := Decode(json.RawMessage(`{"type":"carousel"}`)); ok {
		t.Fatalf("expected unknown type to be rejected")
	}
}

func TestBlocksUnmarshalDropsUndecodableEntries(t *testing.T) {
	payload := `[
		{"type":"paragraph","text":"first"},
		{"type":"carousel","slides":[]},
		{"type":"divider"}
	]`
	var list Blocks
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(list))
	}
	if _, ok := list[1].(Divider); !ok {
		t.Fatalf("expected divider second, got %T", list[1])
	}
}

func TestBlocksRoundTripPreservesOrderAndTypes(t *testing.T) {
	original := Blocks{
		Heading{Level: 2, Text: LocalizedText{EN: "Title", AR: "عنوان"}},
		Paragraph{Text: LocalizedText{EN: "Body", AR: "نص"}},
		List{Ordered: true, Items: []string{"one", "two"}},
		Divider{},
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Blocks
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", original, decoded)
	}
}

func TestMarshalBlockInjectsTypeTag(t *testing.T) {
	encoded, err := MarshalBlock(Quote{Text: LocalizedText{EN: "q", AR: "q"}, Cite: "source"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var envelope map[string]any
	if err := json.Unmarshal(encoded, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope["type"] != TypeQuote {
		t.Fatalf("expected type tag, got %v", envelope["type"])
	}
}

func TestFromMapDecodesEditorPayload(t *testing.T) {
	block, ok := FromMap(map[string]any{
		"type":  "button",
		"label": "Read more",
		"href":  "/blog",
		"style": "secondary",
	})
	if !ok {
		t.Fatalf("expected button to decode")
	}
	button := block.(Button)
	if button.Style != ButtonSecondary {
		t.Fatalf("expected secondary style, got %q", button.Style)
	}
}
