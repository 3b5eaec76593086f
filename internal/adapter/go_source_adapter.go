package adapter

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"

	m "snare.dev/pkg/snare/internal/model"
)

// SourceAdapter inspects source files so the gate can classify mutants by the
// visibility of the declaration that encloses them.
type SourceAdapter interface {
	// Supports reports whether the adapter understands the file's language.
	Supports(path m.Path) bool

	// Accessibility returns the visibility of the nearest declaration
	// enclosing the byte offset. It returns AccessUnknown when nothing encloses it.
	Accessibility(ctx context.Context, filename string, src []byte, offset int) (m.Accessibility, error)
}

// GoSourceAdapter provides a SourceAdapter backed by go/parser.
type GoSourceAdapter struct{}

// NewGoSourceAdapter constructs a GoSourceAdapter.
func NewGoSourceAdapter() *GoSourceAdapter {
	return &GoSourceAdapter{}
}

// Supports reports whether path is a Go source file.
func (a *GoSourceAdapter) Supports(path m.Path) bool {
	return filepath.Ext(string(path)) == ".go"
}

// Accessibility parses src and resolves the declaration enclosing offset.
func (a *GoSourceAdapter) Accessibility(ctx context.Context, filename string, src []byte, offset int) (m.Accessibility, error) {
	if err := ctx.Err(); err != nil {
		return m.AccessUnknown, err
	}

	fileSet := token.NewFileSet()

	file, err := parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return m.AccessUnknown, err
	}

	tokFile := fileSet.File(file.Pos())
	if tokFile == nil || offset < 0 || offset > tokFile.Size() {
		return m.AccessUnknown, nil
	}

	pos := tokFile.Pos(offset)

	for _, decl := range file.Decls {
		if pos < decl.Pos() || pos >= decl.End() {
			continue
		}

		switch d := decl.(type) {
		case *ast.FuncDecl:
			return funcAccessibility(d), nil
		case *ast.GenDecl:
			return genDeclAccessibility(d, pos), nil
		}
	}

	return m.AccessUnknown, nil
}

func funcAccessibility(d *ast.FuncDecl) m.Accessibility {
	if !ast.IsExported(d.Name.Name) {
		return m.AccessPrivate
	}

	if d.Recv != nil && len(d.Recv.List) > 0 {
		if recv := typeName(d.Recv.List[0].Type); recv != "" && !ast.IsExported(recv) {
			return m.AccessInternal
		}
	}

	return m.AccessPublic
}

func genDeclAccessibility(d *ast.GenDecl, pos token.Pos) m.Accessibility {
	for _, spec := range d.Specs {
		if pos < spec.Pos() || pos >= spec.End() {
			continue
		}

		switch s := spec.(type) {
		case *ast.ValueSpec:
			return namesAccessibility(s.Names)
		case *ast.TypeSpec:
			return typeSpecAccessibility(s, pos)
		}
	}

	return m.AccessUnknown
}

func typeSpecAccessibility(s *ast.TypeSpec, pos token.Pos) m.Accessibility {
	owner := visibility(s.Name.Name)

	var fields *ast.FieldList

	switch t := s.Type.(type) {
	case *ast.StructType:
		fields = t.Fields
	case *ast.InterfaceType:
		fields = t.Methods
	}

	if fields == nil {
		return owner
	}

	for _, field := range fields.List {
		if pos < field.Pos() || pos >= field.End() {
			continue
		}

		member := m.AccessPublic
		if len(field.Names) > 0 {
			member = namesAccessibility(field.Names)
		} else if name := typeName(field.Type); name != "" {
			member = visibility(name)
		}

		if member == m.AccessPublic && owner != m.AccessPublic {
			return m.AccessInternal
		}

		return member
	}

	return owner
}

func namesAccessibility(names []*ast.Ident) m.Accessibility {
	for _, name := range names {
		if ast.IsExported(name.Name) {
			return m.AccessPublic
		}
	}

	return m.AccessPrivate
}

func visibility(name string) m.Accessibility {
	if ast.IsExported(name) {
		return m.AccessPublic
	}

	return m.AccessPrivate
}

// typeName unwraps pointers, selectors and generic instantiations to the base type name.
func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return typeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return typeName(t.X)
	case *ast.IndexListExpr:
		return typeName(t.X)
	}

	return ""
}
