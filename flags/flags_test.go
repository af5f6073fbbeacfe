package flags

import (
	"reflect"
	"testing"
	"time"

	"github.com/ulandj/evil-client/adapter"
	"github.com/ulandj/evil-client/output"
)

func TestParse(t *testing.T) {
	flagSet, optionSet, err := parse([]string{"evil"}, terminalInfo{
		stdoutIsTerminal: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	if len(flagSet.Args()) != 0 {
		t.Errorf("unexpected returned args: %v", flagSet.Args())
	}
	expectedOptionSet := &OptionSet{
		AdapterOptions: adapter.Options{
			Timeout: 30 * time.Second,
		},
		OutputOptions: output.Options{
			PrintResponseHeader: true,
			PrintResponseBody:   true,
			EnableColor:         true,
		},
	}
	if !reflect.DeepEqual(expectedOptionSet, optionSet) {
		t.Errorf("unexpected option set: expected=\n%+v\nactual=\n%+v", expectedOptionSet, optionSet)
	}
}

func TestParse_PrintFlag(t *testing.T) {
	_, optionSet, err := parse([]string{"evil", "--print", "HB"}, terminalInfo{})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	expected := output.Options{
		PrintRequestHeader: true,
		PrintRequestBody:   true,
	}
	if !reflect.DeepEqual(expected, optionSet.OutputOptions) {
		t.Errorf("unexpected output options: expected=%+v, actual=%+v", expected, optionSet.OutputOptions)
	}
}

func TestParse_NonTerminalDefaultsToBodyOnly(t *testing.T) {
	_, optionSet, err := parse([]string{"evil"}, terminalInfo{})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	if optionSet.OutputOptions.PrintResponseHeader {
		t.Error("response header should not be printed when stdout is not a terminal")
	}
	if !optionSet.OutputOptions.PrintResponseBody {
		t.Error("response body should be printed")
	}
}

func TestParseDurationOrSeconds(t *testing.T) {
	d, err := parseDurationOrSeconds("2.5")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if d != 2500*time.Millisecond {
		t.Errorf("unexpected duration: %v", d)
	}

	d, err = parseDurationOrSeconds("1m30s")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if d != 90*time.Second {
		t.Errorf("unexpected duration: %v", d)
	}

	if _, err := parseDurationOrSeconds("banana"); err == nil {
		t.Error("expected an error for a malformed timeout")
	}
}
