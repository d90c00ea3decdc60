package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	v := NewItemValidator()

	input := strings.Join([]string{
		`{"name":"Pallet","quantity":5}`,
		`{"name":"","quantity":1}`, // невалидная: пустое имя
		"",                         // пустая строка — ок
		`{"name":"Forklift","quantity":2,"location":"Dock B"}`,
		`{"name":"Crate","extra":"field"}`, // невалидная: неизвестное поле
	}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, v, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var first domain.InventoryItem
	if err := json.Unmarshal([]byte(outLines[0]), &first); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if first.Name != "Pallet" {
		t.Fatalf("unexpected first item: %+v", first)
	}
}

func TestValidateJSONLStream_EmptyInput(t *testing.T) {
	ctx := context.Background()
	v := NewItemValidator()
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, v, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}
