package gen

import (
	"sort"

	"github.com/dave/jennifer/jen"
)

const ginPkg = "github.com/gin-gonic/gin"

// RegistryFile is the base name of both registry files.
const RegistryFile = "registry.go"

// RoutesFile is the route registry in the routers directory.
const RoutesFile = "routes.go"

// EmitModelRegistry lists every model for auto-migration, link models first
// so that join tables exist before the tables that reference them through
// many-to-many relationships are migrated.
func EmitModelRegistry(entities []*Entity) *jen.File {
	ordered := append([]*Entity(nil), entities...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].IsLink && !ordered[j].IsLink })

	f := newFile(ModelPackage)
	f.Comment("All returns a zero value of every model, for auto-migration.")
	f.Func().Id("All").Params().Index().Interface().Block(
		jen.Return(jen.Index().Interface().ValuesFunc(func(g *jen.Group) {
			for _, e := range ordered {
				g.Op("&").Id(e.Name).Values()
			}
		})),
	)

	f.Comment("joinTabler is implemented by models with many-to-many relationships.")
	f.Type().Id("joinTabler").Interface(
		jen.Id("JoinTables").Params().Map(jen.String()).Interface(),
	)

	f.Comment("SetupJoinTables registers the link models of every many-to-many relationship.")
	f.Func().Id("SetupJoinTables").Params(jen.Id("db").Op("*").Qual(gormPkg, "DB")).Error().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("m")).Op(":=").Range().Id("All").Call()).Block(
			jen.List(jen.Id("jt"), jen.Id("ok")).Op(":=").Id("m").Assert(jen.Id("joinTabler")),
			jen.If(jen.Op("!").Id("ok")).Block(jen.Continue()),
			jen.For(jen.List(jen.Id("field"), jen.Id("link")).Op(":=").Range().Id("jt").Dot("JoinTables").Call()).Block(
				jen.If(
					jen.Err().Op(":=").Id("db").Dot("SetupJoinTable").Call(jen.Id("m"), jen.Id("field"), jen.Id("link")),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(jen.Err())),
			),
		),
		jen.Return(jen.Nil()),
	)
	return f
}

// RenderModelRegistry renders EmitModelRegistry.
func RenderModelRegistry(entities []*Entity) ([]byte, error) {
	return render(EmitModelRegistry(entities), RegistryFile)
}

// EmitRoutes mounts the router of every non-link entity.
func EmitRoutes(pkg string, entities []*Entity) *jen.File {
	f := newFile(pkg)
	f.ImportName(ginPkg, "gin")
	f.Comment("RegisterAll mounts every generated router on r.")
	f.Func().Id("RegisterAll").Params(
		jen.Id("r").Qual(ginPkg, "IRouter"),
		jen.Id("db").Op("*").Qual(gormPkg, "DB"),
	).BlockFunc(func(g *jen.Group) {
		for _, e := range entities {
			if e.IsLink || e.Key == nil {
				continue
			}
			g.Id("Register"+e.Name+"Routes").Call(jen.Id("r"), jen.Id("db"))
		}
	})
	return f
}

// RenderRoutes renders EmitRoutes.
func RenderRoutes(pkg string, entities []*Entity) ([]byte, error) {
	return render(EmitRoutes(pkg, entities), RoutesFile)
}
