// Package evilclient wires the immutable request builder, its body/headers
// collaborators and the net/http adapter into an httpie-style command line
// client.
package evilclient

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ulandj/evil-client/adapter"
	"github.com/ulandj/evil-client/body"
	"github.com/ulandj/evil-client/flags"
	"github.com/ulandj/evil-client/headers"
	"github.com/ulandj/evil-client/input"
	"github.com/ulandj/evil-client/output"
	"github.com/ulandj/evil-client/request"
	"github.com/ulandj/evil-client/requestid"
	"github.com/ulandj/evil-client/version"
)

func Main() error {
	flagSet, options, err := flags.Parse(os.Args)
	if err != nil {
		return err
	}
	if options.ShowLicense {
		version.PrintLicenses(os.Stdout)
		return nil
	}

	// Parse positional arguments
	req, err := input.ParseArgs(flagSet.Args())
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(os.Stderr)
		return err
	}
	if err != nil {
		return err
	}

	if options.Form {
		req = req.WithHeaders(request.Field{Name: "Content-Type", Value: "application/x-www-form-urlencoded"})
	}

	// Render the request through the collaborators
	tuple, err := req.Tuple(body.Builder{}, headers.Builder{RequestID: requestid.Default()})
	if err != nil {
		return err
	}
	httpReq, err := adapter.BuildHTTPRequest(tuple)
	if err != nil {
		return err
	}
	client, err := adapter.BuildHTTPClient(&options.AdapterOptions)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	printer := newPrinter(writer, &options.OutputOptions)

	if options.OutputOptions.PrintRequestHeader {
		if err := printer.PrintRequestLine(httpReq); err != nil {
			return err
		}
		if err := printer.PrintHeader(httpReq.Header); err != nil {
			return err
		}
	}
	if options.OutputOptions.PrintRequestBody && httpReq.Body != nil {
		// Buffer the payload so it can be both printed and sent.
		data, err := io.ReadAll(httpReq.Body)
		if err != nil {
			return errors.Wrap(err, "reading request body")
		}
		httpReq.Body = io.NopCloser(bytes.NewReader(data))
		if err := printer.PrintBody(bytes.NewReader(data), httpReq.Header.Get("Content-Type")); err != nil {
			return err
		}
	}

	// Send request and receive response
	resp, err := client.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "sending HTTP request")
	}
	defer resp.Body.Close()

	if options.OutputOptions.PrintResponseHeader {
		if err := printer.PrintStatusLine(resp); err != nil {
			return err
		}
		if err := printer.PrintHeader(resp.Header); err != nil {
			return err
		}
	}
	writer.Flush()
	if options.OutputOptions.PrintResponseBody {
		if err := printer.PrintBody(resp.Body, resp.Header.Get("Content-Type")); err != nil {
			return err
		}
	}

	return nil
}

func newPrinter(writer io.Writer, options *output.Options) output.Printer {
	if options.EnableColor {
		return output.NewPrettyPrinter(output.PrettyPrinterConfig{
			Writer:      writer,
			EnableColor: true,
		})
	}
	return output.NewPlainPrinter(writer)
}
