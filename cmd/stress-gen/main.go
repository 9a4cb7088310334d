// Command stress-gen emits the component and system definitions used by
// ecs-stress. Components are numbered Stress0..StressN-1; system j queries
// the signature {Stress(j), Stress(j+systems)} so signatures overlap
// without every system touching every entity.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

type componentDef struct {
	Index int
}

type systemDef struct {
	Index     int
	Primary   int
	Secondary int
}

type fileData struct {
	ComponentCount int
	SystemCount    int
	Components     []componentDef
	Systems        []systemDef
}

const fileTemplate = `// Code generated by stress-gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/sigil/ecs"
)

const (
	componentCount = {{.ComponentCount}}
	systemCount    = {{.SystemCount}}
)
{{range .Components}}
var TypeStress{{.Index}} = ecs.NewComponentType("Stress{{.Index}}")

type Stress{{.Index}} struct {
	ecs.Owned
	Value float64
	Ticks int64
}

func (*Stress{{.Index}}) Type() ecs.ComponentType { return TypeStress{{.Index}} }
{{end}}
func newStressComponent(i int) ecs.Component {
	switch i {
{{- range .Components}}
	case {{.Index}}:
		return &Stress{{.Index}}{Value: rand.Float64()}
{{- end}}
	}
	return nil
}

// SpawnRandomEntity creates an entity holding numComponents distinct
// randomly chosen component types.
func SpawnRandomEntity(manager *ecs.ComponentManager, numComponents int) {
	e := manager.NewEntity()
	for _, i := range rand.Perm(componentCount)[:numComponents] {
		e.AddComponent(newStressComponent(i))
	}
}
{{range .Systems}}
type stressSystem{{.Index}} struct {
	ecs.BaseSystem
}

func newStressSystem{{.Index}}() *stressSystem{{.Index}} {
	s := &stressSystem{{.Index}}{}
	s.SetRequiredComponents(TypeStress{{.Primary}}, TypeStress{{.Secondary}})
	return s
}

func (s *stressSystem{{.Index}}) ProcessEntity(e *ecs.Entity, dt float64) {
	if c, ok := ecs.Get[*Stress{{.Primary}}](e, TypeStress{{.Primary}}); ok {
		c.Value += dt
		c.Ticks++
	}
}
{{end}}
// RegisterGeneratedSystems wires every generated system into the
// scheduler in index order.
func RegisterGeneratedSystems(scheduler *ecs.Scheduler) {
{{- range .Systems}}
	scheduler.Register(newStressSystem{{.Index}}())
{{- end}}
}
`

func main() {
	componentCount := flag.Int("components", 16, "Number of component types to generate.")
	systemCount := flag.Int("systems", 8, "Number of systems to generate.")
	outPath := flag.String("out", "generated.go", "Output file path.")
	flag.Parse()

	if *systemCount*2 > *componentCount {
		log.Fatalf("need at least %d components for %d systems", *systemCount*2, *systemCount)
	}

	data := fileData{
		ComponentCount: *componentCount,
		SystemCount:    *systemCount,
	}
	for i := 0; i < *componentCount; i++ {
		data.Components = append(data.Components, componentDef{Index: i})
	}
	for j := 0; j < *systemCount; j++ {
		data.Systems = append(data.Systems, systemDef{
			Index:     j,
			Primary:   j,
			Secondary: j + *systemCount,
		})
	}

	tmpl, err := template.New("generated").Parse(fileTemplate)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	// imports.Process also gofmts the output.
	formatted, err := imports.Process(*outPath, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format output: %v", err)
	}

	if err := os.WriteFile(*outPath, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}

	log.Printf("wrote %s: %d components, %d systems", *outPath, *componentCount, *systemCount)
}
