package flags

import (
	"io"
	"os"
	"regexp"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
	"github.com/ulandj/evil-client/adapter"
	"github.com/ulandj/evil-client/output"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	Form           bool
	ShowLicense    bool
	AdapterOptions adapter.Options
	OutputOptions  output.Options
}

type terminalInfo struct {
	stdoutIsTerminal bool
}

func Parse(args []string) (FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
}

func parse(args []string, terminal terminalInfo) (FlagSet, *OptionSet, error) {
	adapterOptions := adapter.Options{}
	outputOptions := output.Options{}
	var form bool
	var showLicense bool
	printFlag := "\000" // "\000" is a special value that indicates user did not specified --print
	timeout := "30s"

	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] URL [REQUEST_ITEM [REQUEST_ITEM ...]]")
	flagSet.BoolVarLong(&form, "form", 'f', "serialize body in application/x-www-form-urlencoded")
	flagSet.StringVarLong(&printFlag, "print", 'p', "specifies what the output should contain (HBhb)")
	flagSet.StringVarLong(&timeout, "timeout", 0, "timeout seconds that you allow the whole operation to take")
	flagSet.BoolVarLong(&adapterOptions.FollowRedirects, "follow", 'F', "follow redirects")
	flagSet.BoolVarLong(&adapterOptions.SkipVerify, "skip-verify", 0, "skip TLS certificate verification")
	flagSet.BoolVarLong(&adapterOptions.ForceHTTP1, "http1", 0, "force HTTP/1.1 protocol")
	flagSet.BoolVarLong(&showLicense, "license", 0, "print license information of evil-client and its dependencies")
	flagSet.Parse(args)

	// Parse --print
	if err := parsePrintFlag(printFlag, &outputOptions, terminal); err != nil {
		return nil, nil, err
	}

	// Parse --timeout
	d, err := parseDurationOrSeconds(timeout)
	if err != nil {
		return nil, nil, err
	}
	adapterOptions.Timeout = d

	// Color
	outputOptions.EnableColor = terminal.stdoutIsTerminal

	optionSet := &OptionSet{
		Form:           form,
		ShowLicense:    showLicense,
		AdapterOptions: adapterOptions,
		OutputOptions:  outputOptions,
	}
	return flagSet, optionSet, nil
}

func parsePrintFlag(printFlag string, outputOptions *output.Options, terminal terminalInfo) error {
	if printFlag == "\000" {
		// --print is not specified
		if terminal.stdoutIsTerminal {
			outputOptions.PrintResponseHeader = true
			outputOptions.PrintResponseBody = true
		} else {
			outputOptions.PrintResponseBody = true
		}
	} else {
		for _, c := range printFlag {
			switch c {
			case 'H':
				outputOptions.PrintRequestHeader = true
			case 'B':
				outputOptions.PrintRequestBody = true
			case 'h':
				outputOptions.PrintResponseHeader = true
			case 'b':
				outputOptions.PrintResponseBody = true
			default:
				return errors.Errorf("Invalid char in --print value (must be consist of HBhb): %c", c)
			}
		}
	}
	return nil
}

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), errors.Errorf("Value of --timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}
