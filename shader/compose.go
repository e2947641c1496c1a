// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package shader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gloam3d/gloam/gfx"
)

// Version is the GLSL version directive emitted into every composed
// program.
const Version = "#version 330 core"

// Stage identifies a shader stage in composition errors.
type Stage int

// Shader stages.
const (
	StageVertex Stage = iota
	StageFragment
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// UndeclaredOutputError reports an output expression bound to a name the
// stage never declared.
type UndeclaredOutputError struct {
	Stage Stage
	Name  string
}

func (e *UndeclaredOutputError) Error() string {
	return fmt.Sprintf("shader: %s stage binds undeclared output %q", e.Stage, e.Name)
}

// InterfaceMismatchError reports a fragment stage input with no matching
// vertex stage output.
type InterfaceMismatchError struct {
	Name string
}

func (e *InterfaceMismatchError) Error() string {
	return fmt.Sprintf("shader: fragment stage input %q is not produced by the vertex stage", e.Name)
}

// UnknownAttributeError reports a vertex stage attribute absent from the
// supplied input-vertex layout.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("shader: vertex stage consumes attribute %q not present in the vertex layout", e.Name)
}

// Compose validates the core against the given input-vertex layout and
// generates the GLSL source for both stages. All interface mismatches
// surface here, before any graphics call is made.
func (c *Core) Compose(layout []VarDef) (vertexSrc, fragmentSrc string, err error) {
	if err := c.validate(layout); err != nil {
		return "", "", err
	}
	return c.Vertex.generate(), c.Fragment.generate(), nil
}

// Link composes the core and links the generated sources into a program
// through the facade. Compile and link failures are returned as-is from
// the backend; no partial program is usable.
func (c *Core) Link(facade gfx.Facade, layout []VarDef) (gfx.Program, error) {
	vertexSrc, fragmentSrc, err := c.Compose(layout)
	if err != nil {
		return nil, err
	}
	return facade.CreateProgram(vertexSrc, fragmentSrc)
}

func (c *Core) validate(layout []VarDef) error {
	attrs := make(map[string]Type, len(layout))
	for _, def := range layout {
		attrs[def.Name] = def.Type
	}
	for _, def := range c.Vertex.Attributes {
		if typ, ok := attrs[def.Name]; !ok || typ != def.Type {
			return &UnknownAttributeError{Name: def.Name}
		}
	}

	if err := checkOutExprs(StageVertex, c.Vertex.OutDefs, c.Vertex.OutExprs); err != nil {
		return err
	}
	if err := checkOutExprs(StageFragment, c.Fragment.OutDefs, c.Fragment.OutExprs); err != nil {
		return err
	}

	outs := make(map[string]OutDef, len(c.Vertex.OutDefs))
	for _, def := range c.Vertex.OutDefs {
		outs[def.Name] = def
	}
	for _, def := range c.Fragment.InDefs {
		produced, ok := outs[def.Name]
		if !ok || produced != def {
			return &InterfaceMismatchError{Name: def.Name}
		}
	}
	return nil
}

func checkOutExprs(stage Stage, defs []OutDef, exprs map[string]string) error {
	declared := make(map[string]bool, len(defs))
	for _, def := range defs {
		declared[def.Name] = true
	}
	for name := range exprs {
		if !declared[name] && !isBuiltin(name) {
			return &UndeclaredOutputError{Stage: stage, Name: name}
		}
	}
	return nil
}

// isBuiltin reports whether name is a GLSL built-in output that needs no
// declaration, such as gl_Position.
func isBuiltin(name string) bool {
	return strings.HasPrefix(name, "gl_")
}

func (v *VertexCore) generate() string {
	var b strings.Builder
	b.WriteString(Version)
	b.WriteString("\n\n")
	writeVarDefs(&b, "uniform", v.Uniforms)
	writeVarDefs(&b, "in", v.Attributes)
	for _, def := range v.OutDefs {
		fmt.Fprintf(&b, "%s out %s %s;\n", def.Qualifier, def.Type, def.Name)
	}
	writeDefs(&b, v.Defs)
	b.WriteString("\nvoid main() {\n")
	writeBody(&b, v.Body)
	writeOutExprs(&b, v.OutDefs, v.OutExprs)
	b.WriteString("}\n")
	return b.String()
}

func (f *FragmentCore) generate() string {
	var b strings.Builder
	b.WriteString(Version)
	b.WriteString("\n\n")
	writeVarDefs(&b, "uniform", f.Uniforms)
	for _, def := range f.InDefs {
		fmt.Fprintf(&b, "%s in %s %s;\n", def.Qualifier, def.Type, def.Name)
	}
	for _, def := range f.OutDefs {
		fmt.Fprintf(&b, "out %s %s;\n", def.Type, def.Name)
	}
	writeDefs(&b, f.Defs)
	b.WriteString("\nvoid main() {\n")
	writeBody(&b, f.Body)
	writeOutExprs(&b, f.OutDefs, f.OutExprs)
	b.WriteString("}\n")
	return b.String()
}

func writeVarDefs(b *strings.Builder, storage string, defs []VarDef) {
	for _, def := range defs {
		fmt.Fprintf(b, "%s %s %s;\n", storage, def.Type, def.Name)
	}
}

func writeDefs(b *strings.Builder, defs string) {
	if strings.TrimSpace(defs) == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(defs))
	b.WriteString("\n")
}

func writeBody(b *strings.Builder, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		b.WriteString("    ")
		b.WriteString(strings.TrimSpace(line))
		b.WriteString("\n")
	}
}

// writeOutExprs emits output assignments in declaration order, then
// assignments to built-ins. Built-ins go last so their expressions can
// refer to the declared outputs, as the position expression of every
// pipeline does.
func writeOutExprs(b *strings.Builder, defs []OutDef, exprs map[string]string) {
	for _, def := range defs {
		if expr, ok := exprs[def.Name]; ok {
			fmt.Fprintf(b, "    %s = %s;\n", def.Name, expr)
		}
	}
	var builtins []string
	for name := range exprs {
		if isBuiltin(name) {
			builtins = append(builtins, name)
		}
	}
	sort.Strings(builtins)
	for _, name := range builtins {
		fmt.Fprintf(b, "    %s = %s;\n", name, exprs[name])
	}
}
