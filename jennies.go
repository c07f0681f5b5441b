package tagmatch

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/tools/imports"
)

const header = "// Code generated by tagmatch. DO NOT EDIT.\n\n"

// Pipeline returns the standard tagmatch JennyList: the dispatch funcs, the
// optional per-enumeration helpers, and goimports over every Go file.
func Pipeline() *JennyList[*Unit] {
	jl := JennyListWithNamer(func(u *Unit) string {
		return u.Name()
	})
	jl.AppendOneToOne(DispatchJenny{})
	jl.AppendOneToMany(EnumHelpersJenny{})
	jl.AddPostprocessors(GoImports)
	return jl
}

// DispatchJenny emits one Go file holding a func for every Func of a Unit.
// Each func body is the Func's template expanded through the dispatcher it
// uses.
type DispatchJenny struct{}

func (DispatchJenny) JennyName() string {
	return "DispatchJenny"
}

func (DispatchJenny) Generate(u *Unit) (*File, error) {
	cfg := u.Config
	if len(cfg.Funcs) == 0 {
		return nil, nil
	}

	var result *multierror.Error
	var funcs bytes.Buffer
	for _, f := range cfg.Funcs {
		body, err := u.Scope.Expand(f.Use, f.Values(), f.Types, f.Body)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("func %s: %w", f.Name, err))
			continue
		}
		funcs.WriteString("\n")
		writeDoc(&funcs, f)
		fmt.Fprintf(&funcs, "func %s(%s)", f.Name, strings.Join(f.Params, ", "))
		if f.Returns != "" {
			fmt.Fprintf(&funcs, " %s", f.Returns)
		}
		funcs.WriteString(" {\n")
		funcs.WriteString(body)
		funcs.WriteString("}\n")
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)
	writeImports(&buf, append([]string{"fmt"}, cfg.Imports...))
	buf.Write(funcs.Bytes())

	// Expanded bodies are spliced in without indentation; gofmt lays them out
	// and leaves raw string literals alone.
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source for %s does not parse: %w", u.Name(), err)
	}
	return &File{
		RelativePath: filepath.Join(u.Dir, cfg.Output),
		Data:         src,
	}, nil
}

func writeDoc(buf *bytes.Buffer, f Func) {
	doc := strings.TrimSpace(f.Doc)
	if doc == "" {
		doc = fmt.Sprintf("%s is generated from %s.", f.Name, f.Use)
	}
	for _, line := range strings.Split(doc, "\n") {
		if line = strings.TrimRight(line, " \t"); line == "" {
			buf.WriteString("//\n")
			continue
		}
		fmt.Fprintf(buf, "// %s\n", line)
	}
}

// writeImports writes an import declaration with standard library paths
// grouped ahead of the rest.
func writeImports(buf *bytes.Buffer, paths []string) {
	var std, other []string
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		if first, _, _ := strings.Cut(p, "/"); strings.Contains(first, ".") {
			other = append(other, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(other)

	if len(std)+len(other) == 1 {
		fmt.Fprintf(buf, "import %s\n", strconv.Quote(append(std, other...)[0]))
		return
	}
	buf.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(buf, "\t%s\n", strconv.Quote(p))
	}
	if len(std) > 0 && len(other) > 0 {
		buf.WriteString("\n")
	}
	for _, p := range other {
		fmt.Fprintf(buf, "\t%s\n", strconv.Quote(p))
	}
	buf.WriteString(")\n")
}

// EnumHelpersJenny emits, when a Unit's Config enables helpers, one file per
// enumeration declared in the Unit's package with a func listing every
// variant and a method naming the concrete type of a tag value.
type EnumHelpersJenny struct{}

func (EnumHelpersJenny) JennyName() string {
	return "EnumHelpersJenny"
}

func (EnumHelpersJenny) Generate(u *Unit) (Files, error) {
	cfg := u.Config
	if !cfg.Helpers {
		return nil, nil
	}

	var fl Files
	for _, e := range cfg.Enums {
		// methods cannot be declared on types of another package
		if strings.Contains(e.GoType(), ".") {
			continue
		}
		fl = append(fl, File{
			RelativePath: filepath.Join(u.Dir, SnakeCase(e.Name)+"_tagmatch_gen.go"),
			Data:         enumHelpers(cfg.Package, e),
		})
	}
	return fl, nil
}

func enumHelpers(pkg string, e Enum) []byte {
	typ := e.GoType()
	consts := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		consts[i] = e.ConstOf(v)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %sVariants returns every %s variant in declaration order.\n", e.Name, e.Name)
	fmt.Fprintf(&buf, "func %sVariants() []%s {\n", e.Name, typ)
	fmt.Fprintf(&buf, "\treturn []%s{%s}\n", typ, strings.Join(consts, ", "))
	buf.WriteString("}\n\n")
	buf.WriteString("// ConcreteName returns the name of the concrete type associated with v.\n")
	fmt.Fprintf(&buf, "func (v %s) ConcreteName() string {\n", typ)
	buf.WriteString("\tswitch v {\n")
	for i, v := range e.Variants {
		fmt.Fprintf(&buf, "\tcase %s:\n", consts[i])
		fmt.Fprintf(&buf, "\t\treturn %s\n", strconv.Quote(v.Concrete))
	}
	buf.WriteString("\t}\n")
	buf.WriteString("\treturn \"\"\n")
	buf.WriteString("}\n")
	return buf.Bytes()
}

// GoImports is a FileMapper that formats Go files and fixes their imports.
// Files without a .go extension pass through unchanged.
func GoImports(f File) (File, error) {
	if filepath.Ext(f.RelativePath) != ".go" {
		return f, nil
	}
	out, err := imports.Process(f.RelativePath, f.Data, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return f, fmt.Errorf("goimports of %s: %w", f.RelativePath, err)
	}
	f.Data = out
	return f, nil
}
