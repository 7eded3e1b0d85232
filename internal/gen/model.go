package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
)

// Header is the first line of every generated file.
const Header = "Code generated by caramello. DO NOT EDIT."

// ModelPackage is the package name of generated models.
const ModelPackage = "models"

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(Header)
	f.ImportName(uuidPkg, "uuid")
	f.ImportName(gormPkg, "gorm")
	f.ImportName(bcryptPkg, "bcrypt")
	return f
}

// TableMarker is the declaration the Validator looks for in a model file.
func TableMarker(entity, table string) string {
	return fmt.Sprintf("const %sTable = %q", entity, table)
}

// ReadMarker is the Read-view declaration of a model file.
func ReadMarker(entity string) string { return "type " + entity + "Read struct" }

// EmitModel builds the model file of one entity: the persisted struct and its
// Read, Create and Update views.
func EmitModel(e *Entity) *jen.File {
	f := newFile(ModelPackage)
	emitPersisted(f, e)
	emitRead(f, e)
	emitCreate(f, e)
	emitUpdate(f, e)
	return f
}

// RenderModel renders EmitModel.
func RenderModel(e *Entity) ([]byte, error) {
	return render(EmitModel(e), ModelFile(e.Name))
}

func render(f *jen.File, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}
	return formatSource(filename, buf.Bytes())
}

// ===== persisted entity =====

func emitPersisted(f *jen.File, e *Entity) {
	f.Comment(fmt.Sprintf("%sTable is the table backing %s.", e.Name, e.Name))
	f.Const().Id(e.Name + "Table").Op("=").Lit(e.Table)

	f.Comment(fmt.Sprintf("%s is a row of the %q table.", e.Name, e.Table))
	if e.Description != "" {
		f.Comment(e.Description)
	}
	f.Type().Id(e.Name).StructFunc(func(g *jen.Group) {
		for _, fd := range e.Fields {
			st := g.Id(fd.GoName).Add(modelType(fd)).Tag(columnTags(fd))
			if fd.Description != "" {
				st.Comment(fd.Description)
			}
		}
		for _, r := range e.Relationships {
			st := g.Id(r.GoName).Add(r.Type.Code()).Tag(relationTags(r))
			if r.Kind == RelManyToMany {
				st.Comment("joined through " + r.LinkModel)
			}
		}
	})

	f.Comment("TableName implements gorm's tabler interface.")
	f.Func().Params(jen.Id(e.Name)).Id("TableName").Params().String().Block(
		jen.Return(jen.Id(e.Name + "Table")),
	)

	if m2m := e.ManyToMany(); len(m2m) > 0 {
		f.Comment("JoinTables maps many-to-many relationships to their link models.")
		f.Func().Params(jen.Id(e.Name)).Id("JoinTables").Params().Map(jen.String()).Interface().Block(
			jen.Return(jen.Map(jen.String()).Interface().Values(jen.DictFunc(func(d jen.Dict) {
				for _, r := range m2m {
					d[jen.Lit(r.GoName)] = jen.Op("&").Id(r.LinkModel).Values()
				}
			}))),
		)
	}

	var factories []*Field
	for _, fd := range e.Fields {
		if fd.Default == DefaultFactory {
			factories = append(factories, fd)
		}
	}
	if len(factories) > 0 {
		f.Comment("BeforeCreate fills server-generated values the caller left empty.")
		f.Func().Params(jen.Id("m").Op("*").Id(e.Name)).Id("BeforeCreate").
			Params(jen.Id("_").Op("*").Qual(gormPkg, "DB")).Error().BlockFunc(func(g *jen.Group) {
			for _, fd := range factories {
				g.Add(factoryStmt(fd))
			}
			g.Return(jen.Nil())
		})
	}

	if fd := touchedField(e); fd != nil {
		f.Comment("BeforeUpdate stamps the modification time.")
		f.Func().Params(jen.Id("m").Op("*").Id(e.Name)).Id("BeforeUpdate").
			Params(jen.Id("_").Op("*").Qual(gormPkg, "DB")).Error().BlockFunc(func(g *jen.Group) {
			if fd.Pointer() {
				g.Id("now").Op(":=").Qual("time", "Now").Call().Dot("UTC").Call()
				g.Id("m").Dot(fd.GoName).Op("=").Op("&").Id("now")
			} else {
				g.Id("m").Dot(fd.GoName).Op("=").Qual("time", "Now").Call().Dot("UTC").Call()
			}
			g.Return(jen.Nil())
		})
	}
}

func touchedField(e *Entity) *Field {
	for _, fd := range e.Fields {
		if fd.Name == "updated_at" && fd.Type.Scalar == ScalarDatetime && !fd.Type.List {
			return fd
		}
	}
	return nil
}

func modelType(fd *Field) jen.Code {
	if fd.Pointer() {
		return fd.Type.Pointer()
	}
	return fd.Type.Code()
}

func columnTags(fd *Field) map[string]string {
	if !fd.Column() {
		return map[string]string{"json": fd.Name + ",omitempty"}
	}
	parts := []string{"column:" + fd.Name}
	if fd.PrimaryKey {
		parts = append(parts, "primaryKey")
	}
	switch {
	case fd.Type.List:
		parts = append(parts, "serializer:json")
	case fd.Type.Scalar == ScalarUUID:
		parts = append(parts, "type:uuid")
	}
	if fd.Unique {
		parts = append(parts, "uniqueIndex")
	}
	if fd.MaxLength > 0 && fd.Type.IsText() && !fd.Type.List {
		parts = append(parts, "size:"+strconv.Itoa(fd.MaxLength))
	}
	if !fd.Nullable {
		parts = append(parts, "not null")
	}
	name := fd.Name
	if fd.Secret {
		name = "-"
	}
	return map[string]string{"gorm": strings.Join(parts, ";"), "json": name}
}

func relationTags(r *Relationship) map[string]string {
	tags := map[string]string{"json": r.Name + ",omitempty"}
	switch {
	case r.Kind == RelManyToMany:
		tags["gorm"] = "many2many:" + r.LinkTable
	case r.ForeignKey != "":
		tags["gorm"] = "foreignKey:" + r.ForeignKey
	}
	return tags
}

func factoryValue(fd *Field) *jen.Statement {
	switch {
	case fd.Factory == "now_utc":
		return jen.Qual("time", "Now").Call().Dot("UTC").Call()
	case fd.Type.Scalar == ScalarString:
		return jen.Qual(uuidPkg, "NewString").Call()
	}
	return jen.Qual(uuidPkg, "New").Call()
}

func factoryStmt(fd *Field) jen.Code {
	target := jen.Id("m").Dot(fd.GoName)
	if fd.Pointer() {
		return jen.If(jen.Id("m").Dot(fd.GoName).Op("==").Nil()).Block(
			jen.Id("v").Op(":=").Add(factoryValue(fd)),
			target.Op("=").Op("&").Id("v"),
		)
	}
	var empty *jen.Statement
	switch fd.Type.Scalar {
	case ScalarDatetime:
		empty = jen.Id("m").Dot(fd.GoName).Dot("IsZero").Call()
	case ScalarUUID:
		empty = jen.Id("m").Dot(fd.GoName).Op("==").Qual(uuidPkg, "Nil")
	default:
		empty = jen.Id("m").Dot(fd.GoName).Op("==").Lit("")
	}
	return jen.If(empty).Block(target.Op("=").Add(factoryValue(fd)))
}

// ===== Read view =====

func emitRead(f *jen.File, e *Entity) {
	fields := e.ReadFields()
	f.Comment(fmt.Sprintf("%sRead is the public view of %s.", e.Name, e.Name))
	f.Type().Id(e.Name + "Read").StructFunc(func(g *jen.Group) {
		for _, fd := range fields {
			g.Id(fd.GoName).Add(modelType(fd)).Tag(map[string]string{"json": fd.Name})
		}
	})

	f.Comment("ToRead projects the row onto its public view.")
	f.Func().Params(jen.Id("m").Op("*").Id(e.Name)).Id("ToRead").Params().Id(e.Name + "Read").Block(
		jen.Return(jen.Id(e.Name + "Read").Values(jen.DictFunc(func(d jen.Dict) {
			for _, fd := range fields {
				d[jen.Id(fd.GoName)] = jen.Id("m").Dot(fd.GoName)
			}
		}))),
	)
}

// ===== Create view =====

// createPointer reports whether the Create field is a pointer. Required
// non-text scalars are pointers too so that zero values (false, 0) still
// pass the required check.
func createPointer(fd *Field) bool {
	if fd.Secret || fd.Type.Nillable() {
		return false
	}
	return fd.Optional() || !fd.Type.IsText()
}

func bindingRules(fd *Field, required bool) string {
	var rules []string
	if fd.Secret {
		// bcrypt rejects longer input
		rules = append(rules, "max=72")
	} else {
		if fd.Type.IsText() && !fd.Type.List && fd.MaxLength > 0 {
			rules = append(rules, "max="+strconv.Itoa(fd.MaxLength))
		}
		if fd.Type.Scalar == ScalarEmail && !fd.Type.List {
			rules = append(rules, "email")
		}
	}
	switch {
	case required:
		return strings.Join(append([]string{"required"}, rules...), ",")
	case len(rules) > 0:
		return strings.Join(append([]string{"omitempty"}, rules...), ",")
	}
	return ""
}

func inputTags(fd *Field, binding string) map[string]string {
	tags := map[string]string{"json": fd.InputName}
	if binding != "" {
		tags["binding"] = binding
	}
	return tags
}

func emitCreate(f *jen.File, e *Entity) {
	fields := e.InputFields()
	name := e.Name + "Create"

	f.Comment(fmt.Sprintf("%s is the request body accepted when creating a %s.", name, e.Name))
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, fd := range fields {
			required := fd.Secret || !fd.Optional()
			var typ jen.Code
			switch {
			case fd.Secret:
				typ = jen.String()
			case createPointer(fd):
				typ = fd.Type.Pointer()
			default:
				typ = fd.Type.Code()
			}
			g.Id(fd.InputGoName).Add(typ).Tag(inputTags(fd, bindingRules(fd, required)))
		}
	})

	f.Comment(fmt.Sprintf("ToModel builds the %s row to insert. Secret inputs are stored as bcrypt hashes.", e.Name))
	f.Func().Params(jen.Id("in").Id(name)).Id("ToModel").Params().
		Params(jen.Op("*").Id(e.Name), jen.Error()).BlockFunc(func(g *jen.Group) {
		g.Id("m").Op(":=").Op("&").Id(e.Name).Values()
		for _, fd := range fields {
			if fd.Secret {
				hashStmts(g, fd, jen.Id("in").Dot(fd.InputGoName), jen.Return(jen.Nil(), jen.Err()))
				continue
			}
			createAssign(g, fd)
		}
		g.Return(jen.Id("m"), jen.Nil())
	})
}

func createAssign(g *jen.Group, fd *Field) {
	in := func() *jen.Statement { return jen.Id("in").Dot(fd.InputGoName) }
	dst := func() *jen.Statement { return jen.Id("m").Dot(fd.GoName) }

	if !createPointer(fd) {
		g.Add(dst().Op("=").Add(in()))
		return
	}
	var then jen.Code
	if fd.Pointer() {
		then = dst().Op("=").Add(in())
	} else {
		then = dst().Op("=").Op("*").Add(in())
	}
	if fd.Default != DefaultLiteral {
		g.If(in().Op("!=").Nil()).Block(then)
		return
	}
	var otherwise []jen.Code
	if fd.Pointer() {
		otherwise = []jen.Code{
			jen.Id("v").Op(":=").Lit(fd.Literal),
			dst().Op("=").Op("&").Id("v"),
		}
	} else {
		otherwise = []jen.Code{dst().Op("=").Lit(fd.Literal)}
	}
	g.If(in().Op("!=").Nil()).Block(then).Else().Block(otherwise...)
}

// hashStmts hashes a plaintext secret into its persisted field.
func hashStmts(g *jen.Group, fd *Field, plain *jen.Statement, onErr jen.Code) {
	hash := inflect.CamelizeDownFirst(fd.InputName) + "Hash"
	g.List(jen.Id(hash), jen.Err()).Op(":=").Qual(bcryptPkg, "GenerateFromPassword").Call(
		jen.Index().Byte().Parens(plain), jen.Qual(bcryptPkg, "DefaultCost"),
	)
	g.If(jen.Err().Op("!=").Nil()).Block(onErr)
	if fd.Pointer() {
		hashed := inflect.CamelizeDownFirst(fd.Name)
		g.Id(hashed).Op(":=").String().Parens(jen.Id(hash))
		g.Id("m").Dot(fd.GoName).Op("=").Op("&").Id(hashed)
		return
	}
	g.Id("m").Dot(fd.GoName).Op("=").String().Parens(jen.Id(hash))
}

// ===== Update view =====

func emitUpdate(f *jen.File, e *Entity) {
	fields := e.InputFields()
	name := e.Name + "Update"

	f.Comment(fmt.Sprintf("%s is a partial update of %s; nil fields are left unchanged.", name, e.Name))
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, fd := range fields {
			var typ jen.Code = fd.Type.Pointer()
			if fd.Secret {
				typ = jen.Id("*string")
			}
			g.Id(fd.InputGoName).Add(typ).Tag(inputTags(fd, bindingRules(fd, false)))
		}
	})

	f.Comment("Apply copies the fields that are set onto m.")
	f.Func().Params(jen.Id("in").Id(name)).Id("Apply").Params(jen.Id("m").Op("*").Id(e.Name)).Error().BlockFunc(func(g *jen.Group) {
		for _, fd := range fields {
			in := jen.Id("in").Dot(fd.InputGoName)
			if fd.Secret {
				g.If(jen.Id("in").Dot(fd.InputGoName).Op("!=").Nil()).BlockFunc(func(b *jen.Group) {
					hashStmts(b, fd, jen.Op("*").Id("in").Dot(fd.InputGoName), jen.Return(jen.Err()))
				})
				continue
			}
			var assign jen.Code
			if fd.Pointer() || fd.Type.Nillable() {
				assign = jen.Id("m").Dot(fd.GoName).Op("=").Add(in)
			} else {
				assign = jen.Id("m").Dot(fd.GoName).Op("=").Op("*").Id("in").Dot(fd.InputGoName)
			}
			g.If(jen.Id("in").Dot(fd.InputGoName).Op("!=").Nil()).Block(assign)
		}
		g.Return(jen.Nil())
	})
}
