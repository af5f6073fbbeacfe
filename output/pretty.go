package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/bytefmt"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type PrettyPrinterConfig struct {
	Writer      io.Writer
	EnableColor bool
}

type PrettyPrinter struct {
	writer        io.Writer
	plain         *PlainPrinter
	aurora        aurora.Aurora
	headerPalette *HeaderPalette
}

type HeaderPalette struct {
	Method         aurora.Color
	URL            aurora.Color
	Proto          aurora.Color
	Status         aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Method:         aurora.WhiteFg | aurora.BoldFm,
	URL:            aurora.GreenFg,
	Proto:          aurora.BlueFg,
	Status:         aurora.BrownFg | aurora.BoldFm,
	FieldName:      aurora.WhiteFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.WhiteFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) *PrettyPrinter {
	return &PrettyPrinter{
		writer:        config.Writer,
		plain:         NewPlainPrinter(config.Writer),
		aurora:        aurora.NewAurora(config.EnableColor),
		headerPalette: &defaultHeaderPalette,
	}
}

func (p *PrettyPrinter) PrintStatusLine(resp *http.Response) error {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize(resp.Proto, p.headerPalette.Proto),
		p.aurora.Colorize(resp.Status, p.headerPalette.Status))
	return nil
}

func (p *PrettyPrinter) PrintRequestLine(req *http.Request) error {
	proto := req.Proto
	if proto == "" {
		proto = "HTTP/1.1"
	}
	fmt.Fprintf(p.writer, "%s %s %s\n",
		p.aurora.Colorize(req.Method, p.headerPalette.Method),
		p.aurora.Colorize(req.URL.RequestURI(), p.headerPalette.URL),
		p.aurora.Colorize(proto, p.headerPalette.Proto))
	return nil
}

func (p *PrettyPrinter) PrintHeader(header http.Header) error {
	var names []string
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range header[name] {
			fmt.Fprintf(p.writer, "%s%s %s\n",
				p.aurora.Colorize(name, p.headerPalette.FieldName),
				p.aurora.Colorize(":", p.headerPalette.FieldSeparator),
				p.aurora.Colorize(value, p.headerPalette.FieldValue))
		}
	}

	fmt.Fprintln(p.writer)
	return nil
}

func (p *PrettyPrinter) PrintBody(body io.Reader, contentType string) error {
	if isJSON(contentType) {
		return p.printJSONBody(body)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "reading body")
	}
	if isBinary(data) {
		fmt.Fprintf(p.writer, "+ binary data (%s) not shown +\n", bytefmt.ByteSize(uint64(len(data))))
		return nil
	}
	return p.plain.PrintBody(bytes.NewReader(data), contentType)
}

func (p *PrettyPrinter) printJSONBody(body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "reading body")
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		// Not actually JSON; print it as-is.
		return p.plain.PrintBody(bytes.NewReader(data), "")
	}

	encoder := json.NewEncoder(p.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func isJSON(contentType string) bool {
	contentType = strings.TrimSpace(contentType)

	semicolon := strings.Index(contentType, ";")
	if semicolon != -1 {
		contentType = contentType[:semicolon]
	}

	return contentType == "application/json"
}

func isBinary(data []byte) bool {
	return !utf8.Valid(data) || bytes.IndexByte(data, 0) != -1
}
