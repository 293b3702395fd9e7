package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"enum-generator/internal/diagnostic"
	"enum-generator/internal/match"
	"enum-generator/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts marked enums.
type Analyzer struct {
	dir string
	log *zap.Logger
}

// NewAnalyzer creates an Analyzer resolving patterns relative to dir (empty
// means the working directory). A nil logger disables logging.
func NewAnalyzer(dir string, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{dir: dir, log: log}
}

// LoadPackages loads the packages matching patterns (e.g. "./color",
// "example.com/app/...") and extracts their enums.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	res := &Result{}

	for _, pkg := range pkgs {
		info, err := a.processPackage(pkg, &res.Diagnostics)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		a.log.Debug("package scanned",
			zap.String("package", pkg.PkgPath),
			zap.Int("count", len(info.Enums)),
		)

		if len(info.Enums) == 0 {
			res.Diagnostics.AddInfo(diagnostic.CodeScanEmpty,
				fmt.Sprintf("package %s declares no //enumgen:generate types", pkg.PkgPath), "")
		}

		res.Packages = append(res.Packages, info)
	}

	return res, nil
}

// candidate is a marked type awaiting its members.
type candidate struct {
	obj  *types.TypeName
	spec model.Spec
}

// processPackage extracts enums from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, diags *diagnostic.Diagnostics) (*PackageInfo, error) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	s := &scanner{pkg: pkg, diags: diags}

	var order []*candidate

	byType := map[*types.TypeName]*candidate{}

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				c := s.typeCandidate(ts, doc)
				if c != nil {
					order = append(order, c)
					byType[c.obj] = c
				}
			}
		}
	}

	if len(order) == 0 {
		return info, nil
	}

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs := spec.(*ast.ValueSpec)

				doc := vs.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				s.members(vs, doc, byType)
			}
		}
	}

	for _, c := range order {
		e, err := model.New(c.spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.position(c.obj.Pos()), err)
		}

		info.Enums = append(info.Enums, e)
	}

	return info, nil
}

type scanner struct {
	pkg   *packages.Package
	diags *diagnostic.Diagnostics
}

func (s *scanner) position(pos token.Pos) string {
	p := s.pkg.Fset.Position(pos)

	return fmt.Sprintf("%s:%d", filepath.Base(p.Filename), p.Line)
}

func (s *scanner) warn(node ast.Node, enum, msg string, suggestions ...string) {
	s.diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticWarning,
		Code:        diagnostic.CodeScanIgnored,
		Message:     msg,
		Enum:        enum,
		Position:    s.position(node.Pos()),
		Suggestions: suggestions,
	})
}

// checkNames warns about misspelled markers.
func (s *scanner) checkNames(ms []marker, enum string, known []string) {
	for _, m := range ms {
		if slices.Contains(known, m.name) {
			continue
		}

		var hints []string
		if hint := match.Suggest(m.name, known, 2); hint != "" {
			hints = append(hints, hint)
		}

		s.warn(m.pos, enum, fmt.Sprintf("unknown marker %q", m.name), hints...)
	}
}

func (s *scanner) typeCandidate(ts *ast.TypeSpec, doc *ast.CommentGroup) *candidate {
	ms := markers(doc)
	if !has(ms, markerGenerate) {
		return nil
	}

	name := ts.Name.Name

	obj, ok := s.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok || obj.IsAlias() || ts.TypeParams != nil {
		s.warn(ts, name, "only defined, non-generic types can be enums")
		return nil
	}

	kind, ok := kindOf(obj.Type())
	if !ok {
		s.warn(ts, name, fmt.Sprintf("underlying type %s is not a supported integer type", obj.Type().Underlying()))
		return nil
	}

	s.checkNames(ms, name, typeMarkers)

	c := &candidate{
		obj: obj,
		spec: model.Spec{
			Name:      name,
			Namespace: s.pkg.PkgPath,
			Package:   s.pkg.Name,
			Public:    token.IsExported(name),
			Flags:     has(ms, markerFlags),
			Kind:      kind,
		},
	}

	for _, m := range ms {
		switch m.name {
		case markerTransform:
			t, err := model.ParseTransform(m.arg)
			if err != nil {
				s.warn(m.pos, name, err.Error())
				continue
			}

			c.spec.Transform = t
		case markerName:
			c.spec.Options.NameOverride = m.arg
		case markerCore:
			pkgName, importPath, _ := strings.Cut(m.arg, " ")
			c.spec.Options.PackageOverride = pkgName
			c.spec.Options.ImportPathOverride = strings.TrimSpace(importPath)
		}
	}

	return c
}

// members appends the constants of vs that belong to a candidate enum.
func (s *scanner) members(vs *ast.ValueSpec, doc *ast.CommentGroup, byType map[*types.TypeName]*candidate) {
	ms := markers(doc, vs.Comment)

	for _, ident := range vs.Names {
		if ident.Name == "_" {
			continue
		}

		obj, ok := s.pkg.TypesInfo.Defs[ident].(*types.Const)
		if !ok {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok {
			continue
		}

		c := byType[named.Obj()]
		if c == nil {
			continue
		}

		s.checkNames(ms, c.spec.Name, memberMarkers)

		member := model.MemberSpec{
			Name:  ident.Name,
			Value: constValue(c.spec.Kind, obj.Val()),
			Omit:  has(ms, markerOmit),
		}

		for _, m := range ms {
			switch m.name {
			case markerLabel, markerDescription:
				text, err := m.quoted()
				if err != nil {
					s.warn(m.pos, c.spec.Name, err.Error())
					continue
				}

				if m.name == markerLabel {
					member.Label = &text
				} else {
					member.Description = &text
				}
			case markerTransform:
				t, err := model.ParseTransform(m.arg)
				if err != nil {
					s.warn(m.pos, c.spec.Name, err.Error())
					continue
				}

				member.Transform = t
			}
		}

		c.spec.Members = append(c.spec.Members, member)
	}
}

// kindOf maps the underlying basic type of t to a model kind.
func kindOf(t types.Type) (model.Kind, bool) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}

	switch basic.Kind() {
	case types.Int:
		return model.KindInt, true
	case types.Int8:
		return model.KindInt8, true
	case types.Int16:
		return model.KindInt16, true
	case types.Int32:
		return model.KindInt32, true
	case types.Int64:
		return model.KindInt64, true
	case types.Uint:
		return model.KindUint, true
	case types.Uint8:
		return model.KindUint8, true
	case types.Uint16:
		return model.KindUint16, true
	case types.Uint32:
		return model.KindUint32, true
	case types.Uint64:
		return model.KindUint64, true
	default:
		return 0, false
	}
}

// constValue converts a type-checked constant. The type checker guarantees
// the value is representable in kind.
func constValue(kind model.Kind, v constant.Value) model.Value {
	if kind.IsSigned() {
		n, _ := constant.Int64Val(v)
		return model.SignedValue(kind, n)
	}

	n, _ := constant.Uint64Val(v)

	return model.UnsignedValue(kind, n)
}
