// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inspect

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/recordext/internal/convert"
	"github.com/greenmaskio/recordext/internal/domains"
	stringsUtils "github.com/greenmaskio/recordext/internal/utils/strings"
)

const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTemplate = "template"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrEmptyTemplate = errors.New("template format requires a template")
)

var jsonSetOpt = &sjson.Options{
	ReplaceInPlace: true,
}

func Render(w io.Writer, res *Result, cfg domains.Query) error {
	switch cfg.Format {
	case FormatTable:
		return renderTable(w, res, cfg.NullValue, cfg.MaxWidth)
	case FormatJSON:
		return renderJSON(w, res)
	case FormatYAML:
		return renderYAML(w, res)
	case FormatTemplate:
		return renderTemplate(w, res, cfg.Template)
	}
	return fmt.Errorf("format \"%s\": %w", cfg.Format, ErrUnknownFormat)
}

func renderTable(w io.Writer, res *Result, nullValue string, maxWidth int) error {
	prettyWriter := tablewriter.NewWriter(w)
	prettyWriter.SetHeader(res.Columns)
	prettyWriter.SetAutoFormatHeaders(false)
	prettyWriter.SetAutoWrapText(false)
	prettyWriter.SetHeaderLine(true)

	lines := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		line := make([]string, len(row))
		for idx, v := range row {
			if v == nil {
				line[idx] = nullValue
				continue
			}
			line[idx] = stringsUtils.WrapString(formatValue(v), maxWidth)
		}
		lines = append(lines, line)
	}
	prettyWriter.AppendBulk(lines)
	prettyWriter.Render()
	return nil
}

// renderJSON - array of objects, NULL is rendered as null.
func renderJSON(w io.Writer, res *Result) error {
	doc := []byte("[]")
	for rowIdx, row := range res.Rows {
		obj := []byte("{}")
		var err error
		for idx, v := range row {
			path := escapePath(res.Columns[idx])
			switch vv := v.(type) {
			case decimal.Decimal:
				// Keep the exact value as a JSON number.
				obj, err = sjson.SetRawBytesOptions(obj, path, []byte(vv.String()), jsonSetOpt)
			default:
				obj, err = sjson.SetBytesOptions(obj, path, jsonValue(v), jsonSetOpt)
			}
			if err != nil {
				return fmt.Errorf("set column \"%s\" of row %d: %w", res.Columns[idx], rowIdx, err)
			}
		}
		doc, err = sjson.SetRawBytes(doc, "-1", obj)
		if err != nil {
			return fmt.Errorf("append row %d: %w", rowIdx, err)
		}
	}
	doc = append(doc, '\n')
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, res *Result) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range res.Rows {
		obj := &yaml.Node{Kind: yaml.MappingNode}
		for idx, v := range row {
			obj.Content = append(obj.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: res.Columns[idx]},
				yamlValue(v),
			)
		}
		doc.Content = append(doc.Content, obj)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func templateFuncMap() template.FuncMap {
	funcs := template.FuncMap{
		"isNull": func(v any) bool {
			return v == nil
		},
	}
	maps.Copy(funcs, sprig.TxtFuncMap())
	return funcs
}

// renderTemplate - execute the template once per row. The row is passed as a
// map of column name to value, NULL is nil. Every row output is terminated by
// a newline.
func renderTemplate(w io.Writer, res *Result, text string) error {
	if text == "" {
		return ErrEmptyTemplate
	}
	tmpl, err := template.New("row").
		Funcs(templateFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	buf := &strings.Builder{}
	for rowIdx, row := range res.Rows {
		data := make(map[string]any, len(row))
		for idx, v := range row {
			switch vv := v.(type) {
			case []byte:
				v = string(vv)
			case [16]byte:
				v = uuid.UUID(vv)
			}
			data[res.Columns[idx]] = v
		}
		buf.Reset()
		if err = tmpl.Execute(buf, data); err != nil {
			return fmt.Errorf("execute template for row %d: %w", rowIdx, err)
		}
		buf.WriteByte('\n')
		if _, err = io.WriteString(w, buf.String()); err != nil {
			return fmt.Errorf("write row %d: %w", rowIdx, err)
		}
	}
	return nil
}

func yamlValue(v any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch vv := v.(type) {
	case nil:
		n.Tag = "!!null"
		n.Value = "null"
	case bool:
		n.Tag = "!!bool"
		n.Value = formatValue(vv)
	case int64, int32, int16, int8, int, uint64, uint32, uint16, uint8, uint:
		n.Tag = "!!int"
		n.Value = formatValue(vv)
	case float64, float32, decimal.Decimal:
		n.Tag = "!!float"
		n.Value = formatValue(vv)
	default:
		n.Tag = "!!str"
		n.Value = formatValue(vv)
	}
	return n
}

func jsonValue(v any) any {
	switch vv := v.(type) {
	case nil, bool, string,
		int64, int32, int16, int8, int, uint64, uint32, uint16, uint8, uint,
		float64, float32:
		return vv
	}
	return formatValue(v)
}

// formatValue - the textual form of a non NULL value.
func formatValue(v any) string {
	switch vv := v.(type) {
	case []byte:
		return string(vv)
	case time.Time:
		return vv.Format(time.RFC3339Nano)
	case uuid.UUID:
		return vv.String()
	case [16]byte:
		// pgx decodes uuid columns into a bare array.
		return uuid.UUID(vv).String()
	}
	s, err := convert.ToString(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}

// escapePath - column names are used as sjson paths, so the path syntax
// characters must be escaped.
func escapePath(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%', ':':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
