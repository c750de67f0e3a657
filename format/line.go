package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/outline/outline"
)

// LineEncoder writes one tab-separated line per declaration of an outline
// document. Members are named by the dotted path of their enclosing types.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *outline.Object) error {
	text, err := e.MarshalText(doc)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(doc *outline.Object) ([]byte, error) {
	var sb strings.Builder

	if pkg := doc.Object("package"); pkg != nil {
		name := pkg.List("name")
		if name.Len() > 0 {
			fmt.Fprintf(&sb, "package\t%v\t%s\n", name.At(0), spanStr(pkg))
		}
	}
	if imports := doc.Object("imports"); imports != nil {
		list := imports.List("list")
		for i := 0; i < list.Len(); i++ {
			fmt.Fprintf(&sb, "import\t%v\n", list.At(i))
		}
	}
	writeMembers(&sb, "", doc)

	return []byte(sb.String()), nil
}

func writeMembers(sb *strings.Builder, prefix string, scope *outline.Object) {
	for _, key := range scope.Keys() {
		switch key {
		case "classes":
			classes := scope.Object(key)
			for _, name := range classes.Keys() {
				class := classes.Object(name)
				qualified := prefix + name
				fmt.Fprintf(sb, "%s\t%s\t%s\t%s\n",
					classKind(class),
					qualified,
					spanStr(class),
					modifiersStr(class),
				)
				writeMembers(sb, qualified+".", class)
			}
		case "fields":
			fields := scope.Object(key)
			for _, name := range fields.Keys() {
				field := fields.Object(name)
				fmt.Fprintf(sb, "field\t%s%s\t%s\t%s\n",
					prefix,
					name,
					field.Text("type"),
					modifiersStr(field),
				)
			}
		case "constructors":
			ctors := scope.List(key)
			for i := 0; i < ctors.Len(); i++ {
				ctor, ok := ctors.At(i).(*outline.Object)
				if !ok {
					continue
				}
				fmt.Fprintf(sb, "constructor\t%s\t%s\t%s\t%s\n",
					strings.TrimSuffix(prefix, "."),
					ctor.Text("parameters"),
					spanStr(ctor),
					modifiersStr(ctor),
				)
			}
		case "methods":
			methods := scope.Object(key)
			for _, name := range methods.Keys() {
				overloads := methods.List(name)
				for i := 0; i < overloads.Len(); i++ {
					method, ok := overloads.At(i).(*outline.Object)
					if !ok {
						continue
					}
					fmt.Fprintf(sb, "method\t%s%s\t%s\t%s\t%s\n",
						prefix,
						name,
						method.Text("parameters"),
						spanStr(method),
						modifiersStr(method),
					)
				}
			}
		}
	}
}

func classKind(class *outline.Object) string {
	if kind := class.Text("kind"); kind != "" {
		return kind
	}
	if class.Text("isInterface") == "true" {
		return "interface"
	}
	return "class"
}

func spanStr(obj *outline.Object) string {
	begin, ok := obj.Position("begin")
	if !ok {
		return "-"
	}
	end, _ := obj.Position("end")
	return fmt.Sprintf("%d:%d-%d:%d", begin.Line, begin.Column, end.Line, end.Column)
}

func modifiersStr(obj *outline.Object) string {
	v, _ := obj.Get("modifiers")
	mods, _ := v.([]string)
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, ",")
}
