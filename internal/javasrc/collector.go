// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package javasrc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/albertocavalcante/sensorbind/internal/sensor"
	"github.com/albertocavalcante/sensorbind/model"
	"github.com/albertocavalcante/sensorbind/scan"
)

// typeDeclKinds are the node kinds that declare a type with a body.
var typeDeclKinds = map[string]bool{
	"class_declaration":     true,
	"interface_declaration": true,
	"enum_declaration":      true,
	"record_declaration":    true,
}

// intTypes are the field types whose constants can feed an int argument.
var intTypes = map[string]bool{"int": true, "short": true, "byte": true}

// file holds per-file state while walking the tree.
type file struct {
	path    string
	src     []byte
	pkg     string
	imports *imports
	res     *resolver

	// consts maps a package-relative type name to its constant fields.
	consts map[string]map[string]*constant
}

// constant is a static final field initialized with a constant expression.
// It is evaluated on first use.
type constant struct {
	owner string
	value *sitter.Node

	busy, done bool
	v          int
	err        error
}

func (f *file) unit(root *sitter.Node) (*model.CompilationUnit, error) {
	f.topLevel(root)
	f.res = &resolver{pkg: f.pkg, imports: f.imports, local: make(map[string]string)}
	f.consts = make(map[string]map[string]*constant)
	f.indexLocalTypes(root, "")

	u := &model.CompilationUnit{Path: f.path, Package: f.pkg}
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child == nil || !typeDeclKinds[child.Kind()] {
			continue
		}
		if err := f.collectType(child, "", u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// topLevel reads the package and import declarations.
func (f *file) topLevel(root *sitter.Node) {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "package_declaration":
			text := f.text(child)
			text = strings.TrimPrefix(strings.TrimSpace(text), "package")
			f.pkg = strings.Join(strings.Fields(strings.TrimSuffix(strings.TrimSpace(text), ";")), "")
		case "import_declaration":
			text := strings.TrimSpace(f.text(child))
			text = strings.TrimPrefix(text, "import")
			f.imports.add(strings.TrimSuffix(strings.TrimSpace(text), ";"))
		}
	}
}

// indexLocalTypes records every type declared in the file so parameter
// types naming them resolve to the right nested name.
func (f *file) indexLocalTypes(n *sitter.Node, outer string) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		if !typeDeclKinds[child.Kind()] {
			if child.Kind() == "class_body" || child.Kind() == "interface_body" ||
				child.Kind() == "enum_body" || child.Kind() == "enum_body_declarations" {
				f.indexLocalTypes(child, outer)
			}
			continue
		}
		name := f.fieldText(child, "name")
		rel := joinName(outer, name)
		if _, seen := f.res.local[name]; !seen {
			f.res.local[name] = rel
		}
		if body := child.ChildByFieldName("body"); body != nil {
			f.indexConstants(body, rel)
			f.indexLocalTypes(body, rel)
		}
	}
}

// indexConstants records the int constants declared directly in a type body.
func (f *file) indexConstants(body *sitter.Node, owner string) {
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		if member == nil {
			continue
		}
		switch member.Kind() {
		case "enum_body_declarations":
			f.indexConstants(member, owner)
		case "field_declaration", "constant_declaration":
			if !f.isConstantField(member) {
				continue
			}
			for j := uint(0); j < member.NamedChildCount(); j++ {
				d := member.NamedChild(j)
				if d == nil || d.Kind() != "variable_declarator" {
					continue
				}
				value := d.ChildByFieldName("value")
				if value == nil {
					continue
				}
				if f.consts[owner] == nil {
					f.consts[owner] = make(map[string]*constant)
				}
				f.consts[owner][f.fieldText(d, "name")] = &constant{owner: owner, value: value}
			}
		}
	}
}

// isConstantField reports whether a field declaration declares static final
// int-typed fields. Interface fields are implicitly static final.
func (f *file) isConstantField(n *sitter.Node) bool {
	if !intTypes[f.fieldText(n, "type")] {
		return false
	}
	if n.Kind() == "constant_declaration" {
		return true
	}
	mods := childOfKind(n, "modifiers")
	return mods != nil && childOfKind(mods, "static") != nil && childOfKind(mods, "final") != nil
}

func (f *file) constantValue(c *constant) (int, error) {
	if c.done {
		return c.v, c.err
	}
	if c.busy {
		return 0, fmt.Errorf("circular constant")
	}
	c.busy = true
	c.v, c.err = f.evalInt(c.value, c.owner)
	c.busy, c.done = false, true
	return c.v, c.err
}

// localConstant finds name in scope or an enclosing type.
func (f *file) localConstant(scope, name string) (*constant, bool) {
	for {
		if c, ok := f.consts[scope][name]; ok {
			return c, true
		}
		i := strings.LastIndexByte(scope, '.')
		if i < 0 {
			return nil, false
		}
		scope = scope[:i]
	}
}

func (f *file) collectType(n *sitter.Node, outer string, u *model.CompilationUnit) error {
	td := &model.TypeDecl{Name: joinName(outer, f.fieldText(n, "name"))}
	u.Types = append(u.Types, td)

	body := n.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	return f.collectMembers(body, td, u)
}

func (f *file) collectMembers(body *sitter.Node, td *model.TypeDecl, u *model.CompilationUnit) error {
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		if member == nil {
			continue
		}
		switch kind := member.Kind(); {
		case kind == "method_declaration":
			m, err := f.method(member, td.Name)
			if err != nil {
				return err
			}
			td.Methods = append(td.Methods, m)
		case kind == "enum_body_declarations":
			if err := f.collectMembers(member, td, u); err != nil {
				return err
			}
		case typeDeclKinds[kind]:
			if err := f.collectType(member, td.Name, u); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *file) method(n *sitter.Node, scope string) (*model.MethodDecl, error) {
	m := &model.MethodDecl{Name: f.fieldText(n, "name")}

	pos := n.StartPosition()
	if name := n.ChildByFieldName("name"); name != nil {
		pos = name.StartPosition()
	}
	m.Pos = model.Position{File: f.path, Line: int(pos.Row) + 1, Column: int(pos.Column) + 1}

	if mods := childOfKind(n, "modifiers"); mods != nil {
		for i := uint(0); i < mods.NamedChildCount(); i++ {
			a := mods.NamedChild(i)
			if a == nil || (a.Kind() != "annotation" && a.Kind() != "marker_annotation") {
				continue
			}
			ann, err := f.annotation(a, scope)
			if err != nil {
				return nil, err
			}
			m.Annotations = append(m.Annotations, ann)
		}
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			p := params.NamedChild(i)
			if p == nil {
				continue
			}
			switch p.Kind() {
			case "formal_parameter":
				m.Params = append(m.Params, model.Parameter{
					Type: f.res.resolveType(f.fieldText(p, "type")),
					Name: f.fieldText(p, "name"),
				})
			case "spread_parameter":
				m.Params = append(m.Params, f.spreadParameter(p))
			}
		}
	}
	return m, nil
}

// spreadParameter handles "T... name". The grammar exposes no fields here.
func (f *file) spreadParameter(n *sitter.Node) model.Parameter {
	var p model.Parameter
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "modifiers":
		case "variable_declarator":
			p.Name = f.fieldText(c, "name")
		default:
			if p.Type == "" {
				p.Type = f.res.resolveType(f.text(c)) + "..."
			}
		}
	}
	return p
}

func (f *file) annotation(n *sitter.Node, scope string) (model.Annotation, error) {
	ann := model.Annotation{Name: f.res.resolveAnnotation(f.fieldText(n, "name"))}
	marker := scan.IsMarker(ann.Name)

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return ann, nil
	}
	for i := uint(0); i < args.NamedChildCount(); i++ {
		arg := args.NamedChild(i)
		if arg == nil || arg.Kind() == "comment" {
			continue
		}
		name, valueNode := scan.ArgValue, arg
		if arg.Kind() == "element_value_pair" {
			name = f.fieldText(arg, "key")
			valueNode = arg.ChildByFieldName("value")
		}
		v, err := f.evalInt(valueNode, scope)
		if err != nil {
			if !marker {
				// Only marker arguments matter; others may be strings,
				// arrays or class literals.
				continue
			}
			p := arg.StartPosition()
			return ann, fmt.Errorf("%s:%d:%d: @%s argument %q: %w", f.path, p.Row+1, p.Column+1, sensor.MarkerName, name, err)
		}
		ann.Args = append(ann.Args, model.AnnotationArg{Name: name, Value: v})
	}
	return ann, nil
}

// evalInt evaluates the constant expressions that can appear as marker
// arguments. Simple names resolve against constants declared in scope or
// its enclosing types, then single static imports, then static on-demand
// imports. Qualified names resolve against this file's types and the
// platform Sensor and SensorManager classes.
func (f *file) evalInt(n *sitter.Node, scope string) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("missing value")
	}
	switch n.Kind() {
	case "decimal_integer_literal":
		v, err := strconv.ParseInt(f.literal(n), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid integer literal %q", f.text(n))
		}
		return int(v), nil
	case "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		// Non-decimal int literals cover all 32 bits, so 0xFFFFFFFF is -1.
		v, err := strconv.ParseUint(f.literal(n), 0, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid integer literal %q", f.text(n))
		}
		return int(int32(v)), nil
	case "parenthesized_expression":
		return f.evalInt(n.NamedChild(0), scope)
	case "unary_expression":
		operand := n.ChildByFieldName("operand")
		if f.fieldText(n, "operator") == "-" && operand != nil && f.literal(operand) == "2147483648" {
			return math.MinInt32, nil
		}
		v, err := f.evalInt(operand, scope)
		if err != nil {
			return 0, err
		}
		switch op := f.fieldText(n, "operator"); op {
		case "-":
			return int(-int32(v)), nil
		case "+":
			return v, nil
		case "~":
			return int(^int32(v)), nil
		default:
			return 0, fmt.Errorf("unsupported operator %q", op)
		}
	case "identifier":
		name := f.text(n)
		if c, ok := f.localConstant(scope, name); ok {
			return f.constantValue(c)
		}
		if ref, ok := f.imports.static[name]; ok {
			if v, ok := sensor.Lookup(ref); ok {
				return v, nil
			}
			return 0, fmt.Errorf("unknown constant %s", ref)
		}
		for _, owner := range f.imports.staticWildcard {
			if v, ok := sensor.Lookup(owner + "." + name); ok {
				return v, nil
			}
		}
		return 0, fmt.Errorf("unknown constant %s", name)
	case "field_access", "scoped_identifier":
		ref := strings.Join(strings.Fields(f.text(n)), "")
		i := strings.LastIndexByte(ref, '.')
		owner, name := f.res.resolveName(ref[:i]), ref[i+1:]
		if c, ok := f.consts[f.relative(owner)][name]; ok {
			return f.constantValue(c)
		}
		if v, ok := sensor.Lookup(owner + "." + name); ok {
			return v, nil
		}
		return 0, fmt.Errorf("unknown constant %s", ref)
	default:
		return 0, fmt.Errorf("unsupported expression %s", f.text(n))
	}
}

// literal returns an integer literal's digits without underscores or a
// long suffix.
func (f *file) literal(n *sitter.Node) string {
	return strings.TrimRight(strings.ReplaceAll(f.text(n), "_", ""), "lL")
}

// relative strips this file's package from a qualified name. Names outside
// the package come back empty.
func (f *file) relative(qualified string) string {
	if f.pkg == "" {
		return qualified
	}
	rel, _ := strings.CutPrefix(qualified, f.pkg+".")
	if rel == qualified {
		return ""
	}
	return rel
}

func (f *file) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(f.src)
}

func (f *file) fieldText(n *sitter.Node, field string) string {
	return f.text(n.ChildByFieldName(field))
}

func childOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

func joinName(outer, name string) string {
	if outer == "" {
		return name
	}
	return outer + "." + name
}
