// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"bytes"
	"fmt"
	"strings"
)

const defaultIndent = "  "

// render serializes f. The layout matches what JavaPoet produces for the
// same declarations: two-space indentation unless f.Indent says otherwise,
// one blank line between members, static imports before regular ones.
func render(f *File) []byte {
	var buf bytes.Buffer
	indent := f.Indent
	if indent == "" {
		indent = defaultIndent
	}

	if f.Comment != "" {
		fmt.Fprintf(&buf, "// %s\n", f.Comment)
	}
	if f.Package != "" {
		fmt.Fprintf(&buf, "package %s;\n\n", f.Package)
	}

	if f.Imports != nil && !f.Imports.empty() {
		static := f.Imports.sortedStatic()
		for _, imp := range static {
			fmt.Fprintf(&buf, "import static %s;\n", imp)
		}
		regular := f.Imports.sortedRegular()
		if len(static) > 0 && len(regular) > 0 {
			buf.WriteString("\n")
		}
		for _, imp := range regular {
			fmt.Fprintf(&buf, "import %s;\n", imp)
		}
		buf.WriteString("\n")
	}

	if f.Type != nil {
		renderClass(&buf, f.Type, indent)
	}
	return buf.Bytes()
}

func renderClass(buf *bytes.Buffer, c *Class, indent string) {
	buf.WriteString(modifiers(c.Modifiers))
	fmt.Fprintf(buf, "class %s", c.Name)
	if len(c.Implements) > 0 {
		fmt.Fprintf(buf, " implements %s", strings.Join(c.Implements, ", "))
	}
	buf.WriteString(" {\n")

	first := true
	separate := func() {
		if !first {
			buf.WriteString("\n")
		}
		first = false
	}

	for _, fd := range c.Fields {
		separate()
		fmt.Fprintf(buf, "%s%s%s %s;\n", indent, modifiers(fd.Modifiers), fd.Type, fd.Name)
	}
	for i := range c.Methods {
		separate()
		renderMethod(buf, &c.Methods[i], indent)
	}

	buf.WriteString("}\n")
}

func renderMethod(buf *bytes.Buffer, m *Method, indent string) {
	for _, a := range m.Annotations {
		fmt.Fprintf(buf, "%s@%s\n", indent, a)
	}

	buf.WriteString(indent)
	buf.WriteString(modifiers(m.Modifiers))
	if m.Result != "" {
		buf.WriteString(m.Result)
		buf.WriteString(" ")
	}
	fmt.Fprintf(buf, "%s(%s) {\n", m.Name, params(m.Params))

	bodyIndent := strings.Repeat(indent, 2)
	for _, l := range m.Body {
		if l.Text == "" {
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(bodyIndent)
		buf.WriteString(strings.Repeat(indent, l.Depth))
		buf.WriteString(l.Text)
		buf.WriteString("\n")
	}

	fmt.Fprintf(buf, "%s}\n", indent)
}

// modifiers renders mods followed by a trailing space, or nothing.
func modifiers(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	return strings.Join(mods, " ") + " "
}

func params(ps []Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		s := p.Type + " " + p.Name
		if p.Final {
			s = "final " + s
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}
