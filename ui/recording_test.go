package ui_test

import (
	"reflect"
	"testing"

	"github.com/tranvictor/decipher/ui"
)

func TestRecordingUICapturesOutput(t *testing.T) {
	r := ui.NewRecordingUI()
	r.Info("decoding %d inputs", 3)
	r.Critical("transfer(address,uint256)")
	r.Error("no candidates for 0x%s", "deadbeef")

	if !r.HasMessage("3 inputs") {
		t.Errorf("expected Info message to be recorded")
	}
	if got := r.CriticalMessages(); len(got) != 1 || got[0] != "transfer(address,uint256)" {
		t.Errorf("CriticalMessages = %v", got)
	}
	if got := r.ErrorMessages(); len(got) != 1 || got[0] != "no candidates for 0xdeadbeef" {
		t.Errorf("ErrorMessages = %v", got)
	}
}

func TestRecordingUITableFlattensRows(t *testing.T) {
	r := ui.NewRecordingUI()
	r.Table(
		[]string{"Param", "Type", "Value"},
		[][]string{
			{"to", "address", "0xabc"},
			{"amount", "uint256", "1000000"},
		},
	)

	want := []string{
		"Param | Type | Value",
		"to | address | 0xabc",
		"amount | uint256 | 1000000",
	}
	if got := r.TableRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("TableRows = %v, want %v", got, want)
	}
}

func TestRecordingUITableWithGroupsSeparatesGroups(t *testing.T) {
	r := ui.NewRecordingUI()
	r.TableWithGroups(nil, [][][]string{
		{{"Method", "transfer"}},
		{{"to", "0xabc"}},
	})

	want := []string{
		"Method | transfer",
		"---",
		"to | 0xabc",
	}
	if got := r.TableRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("TableRows = %v, want %v", got, want)
	}
}

func TestRecordingUIScriptedInputs(t *testing.T) {
	r := ui.NewRecordingUI("2", "y")

	idx := r.Choose("Pick a signature", []string{
		"transfer(address,uint256)",
		"transferFrom(address,address,uint256)",
	})
	if idx != 1 {
		t.Errorf("Choose returned %d, want 1", idx)
	}
	if !r.Confirm("Use this signature?", false) {
		t.Errorf("Confirm should return true for scripted \"y\"")
	}
}

func TestRecordingUIPanicsWhenInputsExhausted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when no scripted inputs remain")
		}
	}()
	r := ui.NewRecordingUI()
	r.Ask(nil)
}

func TestRecordingUIIndentSharesInputQueue(t *testing.T) {
	r := ui.NewRecordingUI("first", "second")
	child := r.Indent()

	if got := child.Ask(nil); got != "first" {
		t.Errorf("child Ask = %q, want %q", got, "first")
	}
	if got := r.Ask(nil); got != "second" {
		t.Errorf("parent Ask = %q, want %q", got, "second")
	}
}

func TestStyledTextMarshalsAsPlainString(t *testing.T) {
	s := ui.StyledText{Text: "transfer", Severity: ui.SeverityCritical}
	b, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %s", err)
	}
	if string(b) != `"transfer"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"transfer"`)
	}
}
